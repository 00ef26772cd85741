package theme

// Icon names the prompt renderer relies on.
const (
	IconTail      = "tail"
	IconSeparator = "separator"
	IconHead      = "head"
)

// DefaultColors is the built-in palette. Semantic names alias the base colors.
var DefaultColors = map[string]string{
	"black":   "1c1c1c",
	"red":     "ff5f5f",
	"green":   "5fd75f",
	"yellow":  "ffd75f",
	"blue":    "5f87d7",
	"magenta": "d75fd7",
	"cyan":    "5fd7d7",
	"white":   "e4e4e4",
	"gray":    "8a8a8a",
	"orange":  "ff8700",

	"error":   "red",
	"warning": "orange",
	"success": "green",
	"info":    "cyan",
	"accent":  "blue",
	"muted":   "gray",

	"prompt-fg":        "white",
	"prompt-bg":        "accent",
	"prompt-status-bg": "success",
	"prompt-error-bg":  "error",
	"prompt-timer-bg":  "gray",
}

// DefaultIcons uses powerline glyphs for the prompt caps.
var DefaultIcons = map[string]string{
	IconTail:      "",
	IconSeparator: "",
	IconHead:      "",

	"ok":      "✔",
	"fail":    "✘",
	"bell":    "●",
	"timer":   "⏱",
	"arrow":   "❯",
	"prev":    "◀",
	"next":    "▶",
	"first":   "⏮",
	"last":    "⏭",
	"warning": "⚠",

	"success": "ok",
	"error":   "fail",
}

// AsciiIcons replaces DefaultIcons on terminals without unicode support.
var AsciiIcons = map[string]string{
	IconTail:      "",
	IconSeparator: "|",
	IconHead:      ">",

	"ok":      "+",
	"fail":    "x",
	"bell":    "*",
	"timer":   "~",
	"arrow":   ">",
	"prev":    "<",
	"next":    ">",
	"first":   "<<",
	"last":    ">>",
	"warning": "!",
}

// DefaultStyles are the named styles used by the console and built-in commands.
var DefaultStyles = map[string]string{
	"error":       "error//b",
	"warning":     "warning/",
	"success":     "success/",
	"info":        "info/",
	"muted":       "muted/",
	"header":      "accent//bu",
	"highlight":   "cyan//b",
	"description": "muted//i",
	"command":     "highlight",
	"value":       "yellow",
	"footer":      "black/white",
	"prompt":      "prompt-fg/prompt-bg",
}
