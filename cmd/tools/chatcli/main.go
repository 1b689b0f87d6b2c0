package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/samanthagolden/speech-site/backend/internal/analysis/topic"
	"github.com/samanthagolden/speech-site/backend/internal/config"
	chatModel "github.com/samanthagolden/speech-site/backend/internal/model/chat"
	"github.com/samanthagolden/speech-site/backend/internal/service/chat"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] .env not loaded, using system environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	proxyURL := flag.String("proxy", cfg.Chat.ProxyURL, "chat proxy endpoint")
	local := flag.Bool("local", !cfg.Chat.AIEnabled, "answer from the local table only")
	delay := flag.Duration("delay", cfg.Chat.TypingDelay, "typing delay before local answers")
	quick := flag.Int("q", 0, "ask quick question N (1-based) and exit")
	timeout := flag.Duration("timeout", 30*time.Second, "per-request timeout")

	flag.Parse()

	conv := chat.NewConversation(
		chat.NewProxyClient(*proxyURL, &http.Client{Timeout: *timeout}),
		topic.NewResponder(topic.DefaultTable()),
		chat.Options{AIEnabled: !*local, TypingDelay: *delay},
	)

	printMessages(conv.Messages())

	if *quick != 0 {
		questions := chat.QuickQuestions()
		if *quick < 1 || *quick > len(questions) {
			log.Fatalf("quick question must be between 1 and %d", len(questions))
		}
		q := questions[*quick-1]
		fmt.Printf("you> %s\n", q.Text)
		reply, err := conv.Ask(context.Background(), q)
		if err != nil {
			log.Fatalf("ask failed: %v", err)
		}
		printMessages([]chatModel.Message{reply})
		return
	}

	for i, q := range chat.QuickQuestions() {
		fmt.Printf("  [%d] %s\n", i+1, q.Text)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		reply, err := conv.Send(context.Background(), line)
		if err != nil {
			log.Printf("send failed: %v", err)
			continue
		}
		printMessages([]chatModel.Message{reply})
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}
}

func printMessages(msgs []chatModel.Message) {
	for _, m := range msgs {
		if m.Sender != chatModel.SenderBot {
			continue
		}
		fmt.Printf("bot[%s]> %s\n", m.Category, m.Text)
	}
}
