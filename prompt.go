package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/r-moraru/single-value-raft/node"
)

// runPrompt reads commands until EOF:
//
//	set <value>   submit a value (leader only)
//	status        print the node status as JSON
func runPrompt(in io.Reader, out io.Writer, n node.Node) {
	input := bufio.NewScanner(in)
	for input.Scan() {
		line := input.Text()
		switch {
		case strings.HasPrefix(line, "set "):
			err := n.SubmitValue(strings.TrimPrefix(line, "set "))
			if errors.Is(err, node.ErrNotLeader) {
				fmt.Fprintf(out, "Not the leader. Current leader is node %s\n", n.GetCurrentLeaderID())
			} else if err != nil {
				fmt.Fprintf(out, "error %v\n", err)
			}
		case strings.TrimSpace(line) == "status":
			status, err := json.Marshal(n.Status())
			if err != nil {
				fmt.Fprintf(out, "error %v\n", err)
				continue
			}
			fmt.Fprintln(out, string(status))
		case strings.TrimSpace(line) == "":
		default:
			fmt.Fprintf(out, "unknown command %q, use \"set <value>\" or \"status\"\n", line)
		}
	}
}
