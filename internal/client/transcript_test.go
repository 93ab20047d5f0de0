package client_test

import (
	"testing"

	"github.com/wabbas/omnibot/internal/client"
)

func TestTranscriptAppendOrder(t *testing.T) {
	transcript := client.NewTranscript(nil)

	transcript.Append(client.Message{Role: client.RoleUser, Text: "a"})
	transcript.Append(client.Message{Role: client.RoleBot, Text: "b"})
	transcript.Append(client.Message{Role: client.RoleUser, Text: "c"})

	got := transcript.Messages()
	if len(got) != 3 {
		t.Fatalf("unexpected length: %d", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Text != want {
			t.Fatalf("entry %d: got %q want %q", i, got[i].Text, want)
		}
	}
}

func TestTranscriptAppendHook(t *testing.T) {
	var drawn []client.Message
	transcript := client.NewTranscript(func(msg client.Message) {
		drawn = append(drawn, msg)
	})

	transcript.Append(client.Message{Role: client.RoleUser, Text: "hello"})

	if len(drawn) != 1 || drawn[0].Text != "hello" {
		t.Fatalf("hook not invoked with appended message: %+v", drawn)
	}
}

func TestTranscriptMessagesIsCopy(t *testing.T) {
	transcript := client.NewTranscript(nil)
	transcript.Append(client.Message{Role: client.RoleUser, Text: "hello"})

	first := transcript.Messages()
	first[0].Text = "mutated"

	if got := transcript.Messages()[0].Text; got != "hello" {
		t.Fatalf("transcript entry mutated through copy: %q", got)
	}
}
