package urls

// Project links shown in the form header, the CLI help and the config file

// Repository is the project home
const Repository = "https://github.com/muurk/profileform"

// Issues is where bug reports go
const Issues = Repository + "/issues"

// ConfigGuide documents every config key and its PROFILEFORM_* override
const ConfigGuide = Repository + "#configuration"
