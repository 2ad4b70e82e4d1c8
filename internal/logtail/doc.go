// Package logtail reads the end of marquee's log file and prints it for
// humans.
//
// The TUI writes JSON entries to a file because it owns the terminal. Tail
// walks back from the end of that file in fixed-size chunks, so only the
// requested lines are read no matter how large the file has grown. Render
// turns each JSON entry back into the console format used by the headless
// commands and passes any other line (a panic trace, say) through as is.
//
//	lines, err := logtail.Tail(cfg.Logging.File, 200)
//	if err != nil {
//		return err
//	}
//	return logtail.Render(os.Stdout, lines, true)
package logtail
