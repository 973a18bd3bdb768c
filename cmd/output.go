package cmd

import (
	"io"
)

// Status lines and scripts go through these so tests can capture them.
var (
	outWriterFunc func() io.Writer
	errWriterFunc func() io.Writer
)

func init() {
	outWriterFunc = rootCmd.OutOrStdout
	errWriterFunc = rootCmd.ErrOrStderr
}

func outWriter() io.Writer {
	return outWriterFunc()
}

func errWriter() io.Writer {
	return errWriterFunc()
}
