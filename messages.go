package geminisdk

import "iter"

// Collect drains a message sequence into a slice. It stops at the first
// error and returns the messages received up to that point alongside it.
// This trades the lazy sequence for convenience when the full response is
// small and wanted at once.
func Collect(seq iter.Seq2[Message, error]) ([]Message, error) {
	var messages []Message

	for msg, err := range seq {
		if err != nil {
			return messages, err
		}

		messages = append(messages, msg)
	}

	return messages, nil
}

// Text extracts the concatenated text content of an assistant message,
// including the code of code blocks. Non-text blocks contribute nothing.
func Text(msg *AssistantMessage) string {
	var out string

	for _, block := range msg.Content {
		switch b := block.(type) {
		case *TextBlock:
			if out != "" {
				out += "\n"
			}

			out += b.Text
		case *CodeBlock:
			if out != "" {
				out += "\n"
			}

			out += b.Code
		}
	}

	return out
}

// FinalResult scans a collected message slice for the terminal result
// message. Returns nil when the sequence ended before one was produced.
func FinalResult(messages []Message) *ResultMessage {
	for i := len(messages) - 1; i >= 0; i-- {
		if result, ok := messages[i].(*ResultMessage); ok {
			return result
		}
	}

	return nil
}
