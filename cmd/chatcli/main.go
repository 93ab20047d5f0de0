package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/wabbas/omnibot/internal/client"
)

// termInput is the text entry anchor fed by the prompt loop.
type termInput struct {
	mu   sync.Mutex
	text string
}

func (i *termInput) Set(text string) {
	i.mu.Lock()
	i.text = text
	i.mu.Unlock()
}

func (i *termInput) Value() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.text
}

func (i *termInput) Clear() {
	i.Set("")
}

// termForm fires the registered submit hook when the user presses enter.
type termForm struct {
	fn func()
}

func (f *termForm) OnSubmit(fn func()) { f.fn = fn }

func (f *termForm) submit() {
	if f.fn != nil {
		f.fn()
	}
}

func main() {
	log.SetFlags(0)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] no .env file, using system environment: %v", err)
	}

	defaultURL := strings.TrimSpace(os.Getenv("OMNIBOT_URL"))
	if defaultURL == "" {
		defaultURL = "http://127.0.0.1:8000"
	}

	serverURL := flag.String("url", defaultURL, "assistant server base URL")
	flag.Parse()

	baseURL := *serverURL

	input := &termInput{}
	form := &termForm{}
	transcript := client.NewTranscript(render)

	ctrl, err := client.Bind(client.Binding{
		Input: input,
		Form:  form,
		List:  transcript,
	}, client.NewHTTPSender(baseURL))
	if err != nil {
		log.Fatalf("failed to bind chat surface: %v", err)
	}

	fmt.Printf("Omnibot client ready (%s). Type 'quit' to exit.\n", baseURL)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nQuery: ")
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(line), "quit") {
			break
		}

		input.Set(line)
		form.submit()
		// Line-based use reads best one exchange at a time.
		ctrl.Wait()
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("input error: %v", err)
	}
}

// render draws one transcript entry to the terminal.
func render(msg client.Message) {
	switch {
	case msg.Role == client.RoleUser:
		return // the user already sees what they typed
	case msg.IsError:
		fmt.Printf("! %s\n", msg.Text)
	default:
		fmt.Printf("\n%s\n", msg.Text)
	}
}
