package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/nidhogg/concept-lab/internal/bootstrap"
	"github.com/nidhogg/concept-lab/internal/config"
	"github.com/nidhogg/concept-lab/internal/dialogue"
	"github.com/nidhogg/concept-lab/internal/service"
)

func main() {
	_ = godotenv.Load()

	server := flag.String("server", "", "concept lab server URL; empty runs the conversation locally")
	cfgPath := flag.String("config", envOr("CONFIG_PATH", "configs/conceptlab.json"), "config file for local renderers")
	dotDir := flag.String("dot-dir", "", "write concept maps as Graphviz files into this directory")
	verbose := flag.Bool("v", false, "log renderer activity")
	flag.Parse()

	if *server != "" {
		runRemote(*server)
		return
	}

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		printError("Failed to load config: %v", err)
		os.Exit(1)
	}
	if *dotDir != "" {
		cfg.Render.DOTDir = *dotDir
	}
	cfg.Render.Log = *verbose
	level := "warn"
	if *verbose {
		level = "debug"
	}

	logger, err := bootstrap.NewLogger(level)
	if err != nil {
		printError("Failed to init logger: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	renderer, closeRenderers := bootstrap.Renderers(ctx, cfg, logger)
	defer closeRenderers()

	session := dialogue.NewSession(service.New(renderer, logger))
	fmt.Print(session.Start())

	scanner := bufio.NewScanner(os.Stdin)
	for !session.Done() {
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		fmt.Print(session.Step(ctx, scanner.Text()))
		if session.Done() {
			fmt.Println()
		}
	}
}

// runRemote relays stdin lines to the server's REST gateway.
func runRemote(server string) {
	fmt.Println("Concept lab CLI chat")
	fmt.Printf("Server: %s\n", server)
	fmt.Println("Use /help for commands. Type 'exit' to leave.")
	fmt.Println("---")

	channel := uuid.New().String()
	fmt.Println(sendMessage(server, channel, "start"))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "exit" {
			fmt.Println("Bye!")
			return
		}
		reply := sendMessage(server, channel, input)
		fmt.Println(reply)
		if strings.HasSuffix(reply, strings.TrimSpace(dialogue.ChatEndedByUser)) {
			return
		}
	}
}

func sendMessage(server, channel, content string) string {
	body, _ := json.Marshal(map[string]string{
		"channel_id": channel,
		"user_id":    "cli-user",
		"user_name":  "cli-user",
		"content":    content,
	})

	client := &http.Client{Timeout: 35 * time.Second}
	resp, err := client.Post(
		server+"/api/gateway/rest/message",
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		printError("Request failed: %v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		printError("Server error (%d): %s", resp.StatusCode, string(data))
		return ""
	}

	var msg struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		printError("Failed to parse response: %v", err)
		return ""
	}
	return msg.Content
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "\033[31m"+format+"\033[0m\n", args...)
}
