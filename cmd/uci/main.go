package main

import (
	"bufio"
	"errors"
	"os"

	"heron-engine/engine"
	"heron-engine/uci"
)

// The reader goroutine owns stdin: it tokenizes each line into a typed
// command and enqueues it on the bounded queue. The engine worker owns the
// game state and stdout. Parse failures travel the queue too, so only the
// worker ever writes a response.
func main() {
	eng := engine.New(os.Stdout)
	queue := eng.Queue()

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			cmd, err := uci.Parse(scanner.Text())
			if err != nil {
				if errors.Is(err, uci.ErrEmptyLine) {
					continue
				}
				cmd = uci.Command{Kind: uci.KindInvalid, Err: err.Error()}
			}
			if !queue.Enqueue(cmd) {
				return
			}
			if cmd.Kind == uci.KindQuit {
				return
			}
		}
		// stdin closed: shut the worker down once it drains the backlog.
		queue.Close()
	}()

	os.Exit(eng.Run())
}
