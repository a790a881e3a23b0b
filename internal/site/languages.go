package site

// prismLanguages are Prism component identifiers accepted in
// additionalLanguages.
var prismLanguages = map[string]bool{
	"abap": true, "ada": true, "apacheconf": true, "applescript": true,
	"arduino": true, "asciidoc": true, "bash": true, "basic": true,
	"batch": true, "bicep": true, "c": true, "clojure": true,
	"cmake": true, "cobol": true, "coffeescript": true, "cpp": true,
	"crystal": true, "csharp": true, "csp": true, "css": true,
	"csv": true, "d": true, "dart": true, "diff": true,
	"docker": true, "elixir": true, "elm": true, "erlang": true,
	"fortran": true, "fsharp": true, "git": true, "glsl": true,
	"go": true, "go-module": true, "gradle": true, "graphql": true,
	"groovy": true, "haml": true, "handlebars": true, "haskell": true,
	"hcl": true, "http": true, "ini": true, "java": true,
	"javascript": true, "jq": true, "json": true, "json5": true,
	"julia": true, "kotlin": true, "latex": true, "less": true,
	"lisp": true, "lua": true, "makefile": true, "markdown": true,
	"markup": true, "matlab": true, "mermaid": true, "nginx": true,
	"nix": true, "objectivec": true, "ocaml": true, "pascal": true,
	"perl": true, "php": true, "powershell": true, "prolog": true,
	"properties": true, "protobuf": true, "pug": true, "puppet": true,
	"python": true, "r": true, "regex": true, "rest": true,
	"ruby": true, "rust": true, "sass": true, "scala": true,
	"scheme": true, "scss": true, "shell-session": true, "solidity": true,
	"sql": true, "swift": true, "toml": true, "tsx": true,
	"typescript": true, "vim": true, "visual-basic": true, "wasm": true,
	"xml-doc": true, "yaml": true, "zig": true,
}

// prismThemes are the theme names exported by prism-react-renderer.
var prismThemes = map[string]bool{
	"dracula": true, "duotoneDark": true, "duotoneLight": true, "github": true,
	"gruvboxMaterialDark": true, "gruvboxMaterialLight": true,
	"jettwaveDark": true, "jettwaveLight": true, "nightOwl": true,
	"nightOwlLight": true, "oceanicNext": true, "okaidia": true,
	"oneDark": true, "oneLight": true, "palenight": true,
	"shadesOfPurple": true, "synthwave84": true, "ultramin": true,
	"vsDark": true, "vsLight": true,
}

// KnownLanguage reports whether id is a Prism language identifier.
func KnownLanguage(id string) bool { return prismLanguages[id] }

// KnownPrismTheme reports whether name is a prism-react-renderer theme.
func KnownPrismTheme(name string) bool { return prismThemes[name] }
