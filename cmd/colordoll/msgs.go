package main

// Short messages (one-liners)
const (
	MsgRootShort = "Colorize text and structured data for the terminal"
	MsgRootLong  = `colordoll renders text and structured data (JSON documents, mappings,
sequences, scalars) with ANSI color codes. Themes assign a color per data
role (keys, strings, numbers, booleans, null); output can be colorized
terminal text, plain text, YAML, or the raw structure.`

	MsgRenderShort = "Render a JSON document with a theme"
	MsgRenderLong  = `Render reads a JSON document from a file argument or stdin and renders it
with the selected theme. The --output flag picks the post-processor: term
(colorized, the default), plain (ANSI codes stripped), yaml, or data (raw
structure echo).

Color overrides are read from --colors, or from
$XDG_CONFIG_HOME/colordoll/colors.json when that file exists.`

	MsgDemoShort = "Show nested colorization and the built-in themes"

	MsgVersionShort = "Print version information"
)
