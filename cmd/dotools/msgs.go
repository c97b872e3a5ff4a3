package dotools

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A small key-value store for shell tooling"
	MsgRootLong        = "dotools keeps a JSON key-value store and a set of named directory bookmarks\nfor use from shell scripts and prompts."
	MsgGetShort        = "Print the value stored under a key"
	MsgSetShort        = "Store a value under a key"
	MsgSetLong         = "Store a value under a key and save the store.\n\nThe value is parsed as JSON when it is valid JSON (numbers, booleans, null,\narrays, objects, quoted strings). Anything else is stored as a plain string."
	MsgDeleteShort     = "Remove a key"
	MsgKeysShort       = "List every key"
	MsgDumpShort       = "Print the whole store"
	MsgPathShort       = "Print the path of the store file"
	MsgLocShort        = "Manage named directory bookmarks"
	MsgLocAddShort     = "Bookmark a directory (defaults to the current one)"
	MsgLocShowShort    = "Print the directory behind a bookmark"
	MsgLocShowLong     = "Print the directory behind a bookmark.\n\nText output is the bare path, so it can be used as: cd \"$(dotools loc show work)\""
	MsgLocRmShort      = "Remove a bookmark"
	MsgLocListShort    = "List bookmarks"
	MsgConfigShort     = "Inspect and create the configuration file"
	MsgConfigInitShort = "Print a commented default configuration"
	MsgConfigShowShort = "Print the resolved configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = "Generate a completion script for the given shell.\n\nBash:\n  source <(dotools completion bash)\n\nZsh:\n  dotools completion zsh > \"${fpath[1]}/_dotools\"\n\nFish:\n  dotools completion fish | source"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Path to a config file (default: $XDG_CONFIG_HOME/dotools/config.toml)"
	MsgFlagDir         = "Directory holding the store (overrides store.dir)"
	MsgFlagFormat      = "Output format: text, json, yaml or toml"
	MsgFlagColor       = "Color output: auto, always or never"
	MsgFlagForce       = "Replace an existing bookmark"
	MsgFlagWrite       = "Write the config file instead of printing it"
	MsgFlagWriteForce  = "Overwrite an existing config file"

	// Status messages
	MsgSetFormat        = "Set %s"
	MsgDeletedFormat    = "Deleted %s"
	MsgLocAddedFormat   = "Added %s -> %s"
	MsgLocRemovedFormat = "Removed %s"
	MsgNoKeys           = "Store is empty."
	MsgNoLocations      = "No locations."
	MsgConfigWritten    = "Wrote %s\n"

	// Errors
	MsgErrorFormat     = "Error: %v"
	MsgErrKeyNotFound  = "key %q not found"
	MsgErrConfigExists = "config file %s already exists, use --force to overwrite"
	MsgErrNoCommand    = "no command specified"
)

// Examples
const (
	MsgSetExample = `  dotools set editor nvim            # stored as "nvim"
  dotools set retries 3              # stored as the number 3
  dotools set tags '["a","b"]'       # stored as an array`

	MsgLocAddExample = `  dotools loc add work ~/code/work
  dotools loc add here               # bookmarks the current directory
  dotools loc add work ~/new --force # moves an existing bookmark`
)
