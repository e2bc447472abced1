package bot

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/hifzbot/internal/database"
	"github.com/example/hifzbot/internal/quran"
	"github.com/example/hifzbot/internal/scheduler"
	"github.com/example/hifzbot/internal/session"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// UserState represents the current state of a user in conversation with the bot
type UserState struct {
	State     string
	Timestamp time.Time
	Data      map[string]interface{}
}

// Bot represents the Telegram bot application
type Bot struct {
	api                *tgbotapi.BotAPI
	token              string
	orchestrator       *session.Orchestrator
	learnerRepo        *database.LearnerRepository
	memorizationRepo   *database.MemorizationRepository
	quranClient        *quran.Client
	schedulerEnabled   bool
	scheduler          *scheduler.Scheduler
	userStates         map[int64]UserState
	adminUserIDs       map[int64]bool
	awaitingFileUpload map[int64]bool
	config             *BotConfig
}

// New creates a new bot instance
func New() (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	if database.DB == nil {
		return nil, fmt.Errorf("database connection is not established")
	}

	config := DefaultConfig()

	memorizationRepo := database.NewMemorizationRepository()
	orchestrator := session.New(
		memorizationRepo,
		database.NewSessionRepository(),
		database.NewStreakRepository(),
	)
	orchestrator.BatchSize = config.PassagesPerDay

	schedulerEnabled := os.Getenv("ENABLE_SCHEDULER") != "false"

	bot := &Bot{
		token:              token,
		orchestrator:       orchestrator,
		learnerRepo:        database.NewLearnerRepository(),
		memorizationRepo:   memorizationRepo,
		quranClient:        quran.NewClient(),
		schedulerEnabled:   schedulerEnabled,
		userStates:         make(map[int64]UserState),
		adminUserIDs:       make(map[int64]bool),
		awaitingFileUpload: make(map[int64]bool),
		config:             config,
	}

	adminIDs := os.Getenv("ADMIN_USER_IDS")
	if adminIDs != "" {
		for _, idStr := range strings.Split(adminIDs, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
			if err != nil {
				log.Printf("Warning: Invalid admin user ID: %s", idStr)
				continue
			}
			bot.adminUserIDs[id] = true
		}
	}

	return bot, nil
}

// Start initializes and starts the bot
func (b *Bot) Start() error {
	botAPI, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %v", err)
	}

	b.api = botAPI
	log.Printf("Authorized on account %s", botAPI.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.api.GetUpdatesChan(updateConfig)

	if b.schedulerEnabled {
		b.scheduler = scheduler.New(b)
		b.scheduler.Start()
		log.Println("Reminder scheduler started")
	}

	for update := range updates {
		go b.handleUpdate(update)
	}

	return nil
}

// Stop gracefully stops the bot
func (b *Bot) Stop() {
	if b.schedulerEnabled && b.scheduler != nil {
		b.scheduler.Stop()
	}
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	log.Println("Bot stopped")
}

// SendReviewReminder implements the scheduler.Notifier interface
func (b *Bot) SendReviewReminder(learnerID int64) error {
	// For private chats the chat ID equals the user ID
	msg := tgbotapi.NewMessage(learnerID,
		"🕌 Time for your daily muraja'ah! Today's passages are waiting. Use /review to begin.")
	_, err := b.api.Send(msg)
	if err != nil {
		log.Printf("Error sending reminder to learner %d: %v", learnerID, err)
	}
	return err
}

// isAdmin checks if a user is an admin
func (b *Bot) isAdmin(userID int64) bool {
	return b.adminUserIDs[userID]
}

// handleUpdate handles incoming updates from Telegram
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			switch update.Message.Command() {
			case "start":
				b.handleStartCommand(update.Message)
			case "menu":
				b.showMainMenu(update.Message.Chat.ID)
			case "review":
				b.handleReviewCommand(update.Message.From.ID, update.Message.Chat.ID)
			case "stats":
				b.handleStatsCommand(update.Message)
			case "surahs":
				b.handleSurahsCommand(update.Message)
			case "settings":
				b.handleSettingsCommand(update.Message)
			case "import":
				// Admin-only command
				if b.isAdmin(update.Message.From.ID) {
					b.handleImportCommand(update.Message)
				} else {
					msg := tgbotapi.NewMessage(update.Message.Chat.ID, "This command is only available for administrators.")
					msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
					b.api.Send(msg)
				}
			default:
				msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Unknown command. Use /menu to show the main menu.")
				msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
				b.api.Send(msg)
			}
		} else if b.awaitingFileUpload[update.Message.Chat.ID] {
			if update.Message.Document != nil {
				b.processImportFile(update.Message)
			} else {
				msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Please send the memorized lists as an .xlsx or .csv file.")
				b.api.Send(msg)
			}
		} else {
			msg := tgbotapi.NewMessage(update.Message.Chat.ID, "I don't understand. Use /menu to show the main menu.")
			msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
			b.api.Send(msg)
		}
	} else if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

// MainMenuButtons returns the main menu keyboard layout
func (b *Bot) MainMenuButtons() [][]MenuButton {
	return [][]MenuButton{
		{{Text: "📖 Today's Review", CallbackData: "review"}},
		{{Text: "📊 My Stats", CallbackData: "stats"}, {Text: "📜 My Surahs", CallbackData: "surahs"}},
		{{Text: "⚙️ Settings", CallbackData: "settings"}},
	}
}

// showMainMenu sends the main menu to the chat
func (b *Bot) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "What would you like to do?")
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	b.api.Send(msg)
}
