// cmd/chatid/main.go
//
// Finds the Telegram chat id to paste into the Settings page: send any
// message to your bot, then run this with TELEGRAM_BOT_TOKEN set.
package main

import (
	"fmt"
	"log"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	updates, err := bot.GetUpdates(tgbotapi.NewUpdate(0))
	if err != nil {
		log.Fatalf("failed to fetch updates: %v", err)
	}

	if len(updates) == 0 {
		fmt.Println("No messages found. Send your bot a message first, then run this again.")
		return
	}

	seen := map[int64]bool{}
	for _, update := range updates {
		if update.Message == nil {
			continue
		}
		chat := update.Message.Chat
		if seen[chat.ID] {
			continue
		}
		seen[chat.ID] = true
		name := chat.UserName
		if name == "" {
			name = chat.FirstName
		}
		fmt.Printf("✅ Chat ID: %d (%s)\n", chat.ID, name)
	}

	fmt.Println("Paste your chat id into Settings → Telegram → Chat ID.")
}
