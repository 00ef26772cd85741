// Package theme holds the named colors, icons and styles used to draw console
// output and prompts.
//
// A Theme is made of three alias maps. A value in any of the maps may name
// another key of the same map, in which case lookups chase the reference until
// a concrete value is found:
//
//	colors:
//	  red: "ff5f5f"
//	  error: red        # resolves to ff5f5f
//
// Styles use a compact descriptor of the form "foreground/background/options"
// where options is a string of single-letter flags:
//
//	b  bold
//	i  italic
//	u  underline
//	k  blink
//	c  crossed out
//
// Empty segments are skipped, so "//b" is just bold and "/blue" only sets the
// background. The Renderer turns a Style into terminal escape sequences using
// termenv, degrading to plain text when the output is not a color terminal.
package theme
