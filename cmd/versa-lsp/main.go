package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/versa-format/go-versa/debug"
)

const lsName = "versa-lsp"

// overridden at release time via -ldflags "-X main.version=..."
var version = "0.0.1"

var debugFlag = flag.Bool("debug", false, "log protocol traffic to stderr")

func main() {
	flag.Parse()
	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
	}
	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	server := newServer()
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, protocol.ServerHandler(server, nil))
	<-conn.Done()
}

func logf(msg string, args ...any) {
	if *debugFlag || debug.LSP() {
		debug.Logf(msg, args...)
	}
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
