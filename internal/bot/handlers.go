package bot

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/hifzbot/internal/excel"
	"github.com/example/hifzbot/internal/quran"
	"github.com/example/hifzbot/internal/review"
	"github.com/example/hifzbot/internal/session"
	"github.com/example/hifzbot/pkg/models"
)

// handleStartCommand handles the /start command
func (b *Bot) handleStartCommand(message *tgbotapi.Message) {
	learner := &models.Learner{
		ID:        message.From.ID,
		Username:  message.From.UserName,
		FirstName: message.From.FirstName,
		LastName:  message.From.LastName,
		IsAdmin:   b.isAdmin(message.From.ID),
	}
	if err := b.learnerRepo.CreateOrUpdate(learner); err != nil {
		log.Printf("Error registering learner %d: %v", message.From.ID, err)
	}

	welcomeText := `Assalamu alaikum! Welcome to the Hifz Maintenance Bot 🕌

Every day I bring you three passages from your memorized surahs to keep them fresh: listen three times, recite three times, then tell me how it went.

Available commands:
/review - Start today's review
/stats - Show your streak and progress
/surahs - Show your memorized surahs
/settings - Reminder settings
/menu - Show main menu`

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	b.api.Send(msg)
}

// handleReviewCommand loads or creates today's session and shows the overview
func (b *Bot) handleReviewCommand(userID, chatID int64) {
	sess, err := b.orchestrator.LoadToday(userID)
	if err != nil {
		log.Printf("Error loading session for learner %d: %v", userID, err)
		msg := tgbotapi.NewMessage(chatID, "Couldn't load today's session, please try again.")
		b.api.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, b.sessionOverviewText(sess))
	msg.ReplyMarkup = b.sessionOverviewKeyboard(sess)
	b.api.Send(msg)
}

// sessionOverviewText renders the session summary
func (b *Bot) sessionOverviewText(sess *models.DailySession) string {
	var sb strings.Builder

	if sess.IsCompleted() {
		sb.WriteString("🎉 Today's review is complete, may Allah preserve it for you!\n\n")
	} else {
		sb.WriteString("📖 Today's muraja'ah\n\n")
	}

	for i, p := range sess.Passages {
		sb.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, p.Label, b.passageStatusIcon(p.ReviewState)))
	}
	sb.WriteString(fmt.Sprintf("\nCompleted: %d of %d", sess.TasksCompleted, sess.TotalTasks))
	return sb.String()
}

// passageStatusIcon summarizes one passage's progress
func (b *Bot) passageStatusIcon(s models.ReviewState) string {
	if review.IsComplete(s) {
		switch s.Quality {
		case models.QualitySmooth:
			return "✅"
		case models.QualityRecovered:
			return "✅ (practiced)"
		default:
			return "✅ (weak)"
		}
	}
	if s.ListenCount == 0 && s.ReciteCount == 0 {
		return ""
	}
	return fmt.Sprintf("🎧%d/%d 🗣%d/%d",
		s.ListenCount, b.config.ListenRepetitions, s.ReciteCount, b.config.ReciteRepetitions)
}

// sessionOverviewKeyboard builds one button per passage plus a finish button
// once everything is done
func (b *Bot) sessionOverviewKeyboard(sess *models.DailySession) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]MenuButton
	for i, p := range sess.Passages {
		buttons = append(buttons, []MenuButton{
			{Text: fmt.Sprintf("%d. %s", i+1, p.Label), CallbackData: fmt.Sprintf("passage:%d", i)},
		})
	}
	if !sess.IsCompleted() && sess.TotalTasks > 0 && sess.TasksCompleted == sess.TotalTasks {
		buttons = append(buttons, []MenuButton{{Text: "🏁 Finish session", CallbackData: "finish"}})
	}
	return createKeyboard(buttons)
}

// showPassage renders one passage's detail view with its step buttons
func (b *Bot) showPassage(chatID int64, messageID int, userID int64, idx int) {
	sess, err := b.orchestrator.LoadToday(userID)
	if err != nil {
		log.Printf("Error loading session for learner %d: %v", userID, err)
		return
	}
	if idx < 0 || idx >= len(sess.Passages) {
		return
	}
	p := sess.Passages[idx]

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📖 %s (ayah %d-%d)\n", p.Label, p.FromAyah, p.ToAyah))

	// Best effort: show the opening ayah as a memory hook
	if text, err := b.quranClient.GetAyahText(p.SurahNumber, p.FromAyah); err == nil {
		sb.WriteString("\n" + text + "\n")
	}

	sb.WriteString(fmt.Sprintf("\n🎧 Listened %d/%d   🗣 Recited %d/%d\n",
		p.ListenCount, b.config.ListenRepetitions, p.ReciteCount, b.config.ReciteRepetitions))
	switch {
	case p.Assessment == nil:
		if p.ReciteCount >= b.config.ReciteRepetitions {
			sb.WriteString("\nHow was your recitation?")
		}
	case p.Assessment.Smooth:
		sb.WriteString("\nAssessed: smooth, masha'Allah!")
	default:
		sb.WriteString("\nAssessed: needs work on " + joinCategories(p.Assessment.WeakAreas))
	}

	text := sb.String()
	keyboard := b.passageKeyboard(userID, idx, p.ReviewState)

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	if _, err := b.api.Send(edit); err != nil {
		// Editing fails when the view came from a fresh command; send instead
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = keyboard
		b.api.Send(msg)
	}
}

// passageKeyboard builds the step buttons for one passage
func (b *Bot) passageKeyboard(userID int64, idx int, s models.ReviewState) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]MenuButton

	listenRow := make([]MenuButton, 0, b.config.ListenRepetitions)
	for n := 1; n <= b.config.ListenRepetitions; n++ {
		text := fmt.Sprintf("🎧 %d", n)
		if n <= s.ListenCount {
			text = fmt.Sprintf("🎧 %d ✓", n)
		}
		listenRow = append(listenRow, MenuButton{Text: text, CallbackData: fmt.Sprintf("listen:%d:%d", idx, n)})
	}
	buttons = append(buttons, listenRow)

	if s.ListenCount >= b.config.ListenRepetitions {
		reciteRow := make([]MenuButton, 0, b.config.ReciteRepetitions)
		for n := 1; n <= b.config.ReciteRepetitions; n++ {
			text := fmt.Sprintf("🗣 %d", n)
			if n <= s.ReciteCount {
				text = fmt.Sprintf("🗣 %d ✓", n)
			}
			reciteRow = append(reciteRow, MenuButton{Text: text, CallbackData: fmt.Sprintf("recite:%d:%d", idx, n)})
		}
		buttons = append(buttons, reciteRow)
	}

	if s.ReciteCount >= b.config.ReciteRepetitions && s.Assessment == nil {
		buttons = append(buttons, []MenuButton{
			{Text: "😊 Smooth", CallbackData: fmt.Sprintf("assess:%d:smooth", idx)},
			{Text: "😓 Needs work", CallbackData: fmt.Sprintf("assess:%d:weak", idx)},
		})
	}

	if s.Assessment != nil && !s.Assessment.Smooth {
		var practiceRow []MenuButton
		for _, category := range s.Assessment.WeakAreas {
			text := categoryLabel(category)
			if s.HasPracticed(category) {
				text += " ✓"
			}
			practiceRow = append(practiceRow, MenuButton{
				Text: text, CallbackData: fmt.Sprintf("practice:%d:%s", idx, category),
			})
		}
		buttons = append(buttons, practiceRow)
	}

	buttons = append(buttons, []MenuButton{{Text: "⬅️ Back to session", CallbackData: "review"}})
	return createKeyboard(buttons)
}

// weakAreaKeyboard builds the multi-select picker for weak areas
func weakAreaKeyboard(idx int, picked map[string]bool) tgbotapi.InlineKeyboardMarkup {
	categories := []models.PracticeCategory{
		models.PracticeMemorisation, models.PracticeFluency, models.PracticeUnderstanding,
	}

	var buttons [][]MenuButton
	for _, category := range categories {
		mark := "☐"
		if picked[string(category)] {
			mark = "☑"
		}
		buttons = append(buttons, []MenuButton{{
			Text:         fmt.Sprintf("%s %s", mark, categoryLabel(category)),
			CallbackData: fmt.Sprintf("weak:%d:%s", idx, category),
		}})
	}
	buttons = append(buttons, []MenuButton{{Text: "Done", CallbackData: fmt.Sprintf("weakdone:%d", idx)}})
	return createKeyboard(buttons)
}

func categoryLabel(category models.PracticeCategory) string {
	switch category {
	case models.PracticeMemorisation:
		return "📝 Memorisation"
	case models.PracticeFluency:
		return "🗣 Fluency"
	case models.PracticeUnderstanding:
		return "💡 Understanding"
	}
	return string(category)
}

func joinCategories(categories []models.PracticeCategory) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// handleCallbackQuery routes button taps
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	// Acknowledge the tap so the button stops spinning
	b.api.Request(tgbotapi.NewCallback(query.ID, ""))

	userID := query.From.ID
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID
	parts := strings.Split(query.Data, ":")

	switch parts[0] {
	case "review":
		b.refreshOverview(chatID, messageID, userID)
	case "stats":
		b.handleStatsCommand(query.Message)
	case "surahs":
		b.handleSurahsCommand(query.Message)
	case "settings":
		b.showSettings(chatID, messageID, userID)
	case "notify":
		b.handleNotifyToggle(chatID, messageID, userID, parts)
	case "hourpick":
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID,
			"When should I remind you? Pick an hour (server time).", hourKeyboard())
		b.api.Send(edit)
	case "hour":
		b.handleHourCallback(chatID, messageID, userID, parts)
	case "menu":
		b.showMainMenu(chatID)
	case "passage":
		if idx, err := strconv.Atoi(parts[1]); err == nil {
			b.showPassage(chatID, messageID, userID, idx)
		}
	case "listen":
		b.handleTapCallback(chatID, messageID, userID, parts, b.orchestrator.ApplyListenTap)
	case "recite":
		b.handleTapCallback(chatID, messageID, userID, parts, b.orchestrator.ApplyReciteTap)
	case "assess":
		b.handleAssessCallback(chatID, messageID, userID, parts)
	case "weak":
		b.handleWeakToggle(chatID, messageID, userID, parts)
	case "weakdone":
		b.handleWeakDone(chatID, messageID, userID, parts)
	case "practice":
		b.handlePracticeCallback(chatID, messageID, userID, parts)
	case "finish":
		b.handleFinishCallback(chatID, messageID, userID)
	}
}

// refreshOverview re-renders the session overview in place
func (b *Bot) refreshOverview(chatID int64, messageID int, userID int64) {
	sess, err := b.orchestrator.LoadToday(userID)
	if err != nil {
		log.Printf("Error loading session for learner %d: %v", userID, err)
		return
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID,
		b.sessionOverviewText(sess), b.sessionOverviewKeyboard(sess))
	if _, err := b.api.Send(edit); err != nil {
		b.handleReviewCommand(userID, chatID)
	}
}

// handleTapCallback applies a listen or recite tap
func (b *Bot) handleTapCallback(chatID int64, messageID int, userID int64, parts []string,
	apply func(int64, int, int) (*models.DailySession, bool, error)) {
	if len(parts) != 3 {
		return
	}
	idx, err1 := strconv.Atoi(parts[1])
	n, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return
	}

	sess, ok, err := apply(userID, idx, n)
	if err != nil {
		b.reportSaveError(chatID, userID, err)
		return
	}
	_ = ok // a rejected tap just re-renders the current state

	if sess.IsCompleted() {
		b.refreshOverview(chatID, messageID, userID)
		return
	}
	b.showPassage(chatID, messageID, userID, idx)
}

// handleAssessCallback handles the smooth/weak choice
func (b *Bot) handleAssessCallback(chatID int64, messageID int, userID int64, parts []string) {
	if len(parts) != 3 {
		return
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}

	if parts[2] == "smooth" {
		sess, _, err := b.orchestrator.SubmitAssessment(userID, idx, models.Assessment{Smooth: true})
		if err != nil {
			b.reportSaveError(chatID, userID, err)
			return
		}
		if sess.IsCompleted() {
			b.refreshOverview(chatID, messageID, userID)
			return
		}
		b.showPassage(chatID, messageID, userID, idx)
		return
	}

	// Weak: let the learner pick which areas to work on
	b.userStates[userID] = UserState{
		State:     "picking_weak_areas",
		Timestamp: time.Now(),
		Data:      map[string]interface{}{"passage": idx, "areas": map[string]bool{}},
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID,
		"Which areas need work?", weakAreaKeyboard(idx, nil))
	b.api.Send(edit)
}

// handleWeakToggle toggles one weak-area selection
func (b *Bot) handleWeakToggle(chatID int64, messageID int, userID int64, parts []string) {
	if len(parts) != 3 {
		return
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}

	state, exists := b.userStates[userID]
	if !exists || state.State != "picking_weak_areas" {
		return
	}
	picked, _ := state.Data["areas"].(map[string]bool)
	if picked == nil {
		picked = map[string]bool{}
		state.Data["areas"] = picked
	}
	picked[parts[2]] = !picked[parts[2]]

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID,
		"Which areas need work?", weakAreaKeyboard(idx, picked))
	b.api.Send(edit)
}

// handleWeakDone submits the weak assessment with the picked areas
func (b *Bot) handleWeakDone(chatID int64, messageID int, userID int64, parts []string) {
	if len(parts) != 2 {
		return
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}

	state, exists := b.userStates[userID]
	if !exists || state.State != "picking_weak_areas" {
		return
	}
	picked, _ := state.Data["areas"].(map[string]bool)

	var areas []models.PracticeCategory
	// Fixed order keeps the stored assessment stable
	for _, category := range []models.PracticeCategory{
		models.PracticeMemorisation, models.PracticeFluency, models.PracticeUnderstanding,
	} {
		if picked[string(category)] {
			areas = append(areas, category)
		}
	}
	if len(areas) == 0 {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID,
			"Pick at least one area, or go back and choose Smooth.", weakAreaKeyboard(idx, picked))
		b.api.Send(edit)
		return
	}

	delete(b.userStates, userID)

	sess, _, err := b.orchestrator.SubmitAssessment(userID, idx, models.Assessment{WeakAreas: areas})
	if err != nil {
		b.reportSaveError(chatID, userID, err)
		return
	}
	if sess.IsCompleted() {
		b.refreshOverview(chatID, messageID, userID)
		return
	}
	b.showPassage(chatID, messageID, userID, idx)
}

// handlePracticeCallback marks one practice drill done
func (b *Bot) handlePracticeCallback(chatID int64, messageID int, userID int64, parts []string) {
	if len(parts) != 3 {
		return
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}

	_, _, err = b.orchestrator.MarkPracticeDone(userID, idx, models.PracticeCategory(parts[2]))
	if err != nil {
		b.reportSaveError(chatID, userID, err)
		return
	}
	b.showPassage(chatID, messageID, userID, idx)
}

// handleFinishCallback closes a fully reviewed session
func (b *Bot) handleFinishCallback(chatID int64, messageID int, userID int64) {
	_, _, err := b.orchestrator.FinishSession(userID)
	if err != nil && !errors.Is(err, session.ErrNoSession) {
		b.reportSaveError(chatID, userID, err)
		return
	}
	b.refreshOverview(chatID, messageID, userID)
}

// reportSaveError tells the learner their tap didn't stick
func (b *Bot) reportSaveError(chatID int64, userID int64, err error) {
	log.Printf("Error saving progress for learner %d: %v", userID, err)
	msg := tgbotapi.NewMessage(chatID, "Couldn't save that, please tap again.")
	b.api.Send(msg)
}

// handleStatsCommand shows the learner's streak and totals
func (b *Bot) handleStatsCommand(message *tgbotapi.Message) {
	userID := message.Chat.ID

	streak, err := b.orchestrator.StreakState(userID)
	if err != nil {
		log.Printf("Error loading streak for learner %d: %v", userID, err)
		b.api.Send(tgbotapi.NewMessage(message.Chat.ID, "Couldn't load your stats, please try again."))
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 Your progress\n\n")
	sb.WriteString(fmt.Sprintf("🔥 Current streak: %d days\n", streak.CurrentStreak))
	sb.WriteString(fmt.Sprintf("🏆 Longest streak: %d days\n", streak.LongestStreak))
	sb.WriteString(fmt.Sprintf("📚 Sessions completed: %d\n", streak.TotalSessionsCompleted))
	if streak.LastCompletionDate != "" {
		sb.WriteString(fmt.Sprintf("📅 Last completed: %s\n", streak.LastCompletionDate))
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, sb.String())
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	b.api.Send(msg)
}

// handleSurahsCommand lists the learner's memorized surahs
func (b *Bot) handleSurahsCommand(message *tgbotapi.Message) {
	userID := message.Chat.ID

	entries, err := b.memorizationRepo.GetAll(userID)
	if err != nil {
		log.Printf("Error loading memorized list for learner %d: %v", userID, err)
		b.api.Send(tgbotapi.NewMessage(message.Chat.ID, "Couldn't load your surahs, please try again."))
		return
	}

	if len(entries) == 0 {
		msg := tgbotapi.NewMessage(message.Chat.ID,
			"No memorized surahs on record yet, so your reviews use the starter set (Al-Fatihah and the last three surahs). Ask your teacher to import your list.")
		msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
		b.api.Send(msg)
		return
	}

	var sb strings.Builder
	sb.WriteString("📜 Your memorized surahs\n\n")
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("%d. %s (%d)\n", entry.Position, quran.SurahName(entry.SurahNumber), entry.SurahNumber))
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, sb.String())
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	b.api.Send(msg)
}

// handleSettingsCommand shows the learner's reminder settings
func (b *Bot) handleSettingsCommand(message *tgbotapi.Message) {
	// For private chats the chat ID equals the user ID
	b.showSettings(message.Chat.ID, 0, message.Chat.ID)
}

// showSettings renders the reminder settings view. A zero messageID sends a
// fresh message; otherwise the existing one is edited in place.
func (b *Bot) showSettings(chatID int64, messageID int, userID int64) {
	learner, err := b.learnerRepo.GetByID(userID)
	if err != nil {
		log.Printf("Error loading learner %d: %v", userID, err)
		b.api.Send(tgbotapi.NewMessage(chatID, "Couldn't load your settings, use /start first."))
		return
	}

	status := "off 🔕"
	if learner.NotificationEnabled {
		status = fmt.Sprintf("on 🔔 at %02d:00", learner.NotificationHour)
	}
	text := "⚙️ Settings\n\nDaily reminder: " + status
	keyboard := settingsKeyboard(learner)

	if messageID == 0 {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = keyboard
		b.api.Send(msg)
		return
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	if _, err := b.api.Send(edit); err != nil {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = keyboard
		b.api.Send(msg)
	}
}

// settingsKeyboard builds the reminder toggle and hour picker entry
func settingsKeyboard(learner *models.Learner) tgbotapi.InlineKeyboardMarkup {
	toggle := MenuButton{Text: "🔕 Turn reminders off", CallbackData: "notify:off"}
	if !learner.NotificationEnabled {
		toggle = MenuButton{Text: "🔔 Turn reminders on", CallbackData: "notify:on"}
	}
	return createKeyboard([][]MenuButton{
		{toggle},
		{{Text: "⏰ Change reminder hour", CallbackData: "hourpick"}},
		{{Text: "⬅️ Main menu", CallbackData: "menu"}},
	})
}

// hourKeyboard lays out the 24 reminder hours in rows of six
func hourKeyboard() tgbotapi.InlineKeyboardMarkup {
	var buttons [][]MenuButton
	var row []MenuButton
	for hour := 0; hour < 24; hour++ {
		row = append(row, MenuButton{Text: fmt.Sprintf("%02d", hour), CallbackData: fmt.Sprintf("hour:%d", hour)})
		if len(row) == 6 {
			buttons = append(buttons, row)
			row = nil
		}
	}
	buttons = append(buttons, []MenuButton{{Text: "⬅️ Back", CallbackData: "settings"}})
	return createKeyboard(buttons)
}

// handleNotifyToggle turns daily reminders on or off
func (b *Bot) handleNotifyToggle(chatID int64, messageID int, userID int64, parts []string) {
	if len(parts) != 2 {
		return
	}
	enabled := parts[1] == "on"
	if err := b.learnerRepo.SetNotificationEnabled(userID, enabled); err != nil {
		log.Printf("Error updating notification setting for learner %d: %v", userID, err)
		b.api.Send(tgbotapi.NewMessage(chatID, "Couldn't save that, please tap again."))
		return
	}
	b.showSettings(chatID, messageID, userID)
}

// handleHourCallback saves the picked reminder hour
func (b *Bot) handleHourCallback(chatID int64, messageID int, userID int64, parts []string) {
	if len(parts) != 2 {
		return
	}
	hour, err := strconv.Atoi(parts[1])
	if err != nil || hour < 0 || hour > 23 {
		return
	}
	if err := b.learnerRepo.SetNotificationHour(userID, hour); err != nil {
		log.Printf("Error updating notification hour for learner %d: %v", userID, err)
		b.api.Send(tgbotapi.NewMessage(chatID, "Couldn't save that, please tap again."))
		return
	}
	b.showSettings(chatID, messageID, userID)
}

// handleImportCommand asks the admin for the import file
func (b *Bot) handleImportCommand(message *tgbotapi.Message) {
	b.awaitingFileUpload[message.Chat.ID] = true
	msg := tgbotapi.NewMessage(message.Chat.ID,
		"Send an .xlsx or .csv file with memorized lists.\nColumns: telegram ID, surah number. One row per surah, in memorization order.")
	b.api.Send(msg)
}

// processImportFile downloads the uploaded document and runs the importer
func (b *Bot) processImportFile(message *tgbotapi.Message) {
	delete(b.awaitingFileUpload, message.Chat.ID)

	url, err := b.api.GetFileDirectURL(message.Document.FileID)
	if err != nil {
		log.Printf("Error getting file URL: %v", err)
		b.api.Send(tgbotapi.NewMessage(message.Chat.ID, "Couldn't download the file, please try again."))
		return
	}

	localPath, err := downloadToTemp(url, message.Document.FileName)
	if err != nil {
		log.Printf("Error downloading import file: %v", err)
		b.api.Send(tgbotapi.NewMessage(message.Chat.ID, "Couldn't download the file, please try again."))
		return
	}
	defer os.Remove(localPath)

	config := excel.DefaultImportConfig()
	config.FilePath = localPath

	result, err := excel.ImportMemorizedLists(config)
	if err != nil {
		log.Printf("Error importing memorized lists: %v", err)
		b.api.Send(tgbotapi.NewMessage(message.Chat.ID, fmt.Sprintf("Import failed: %v", err)))
		return
	}

	var sb strings.Builder
	sb.WriteString("Import finished ✅\n\n")
	sb.WriteString(fmt.Sprintf("Rows processed: %d\n", result.TotalProcessed))
	sb.WriteString(fmt.Sprintf("Learners updated: %d\n", result.LearnersUpdated))
	sb.WriteString(fmt.Sprintf("Surahs imported: %d\n", result.SurahsImported))
	if result.Skipped > 0 {
		sb.WriteString(fmt.Sprintf("Rows skipped: %d\n", result.Skipped))
	}
	for _, e := range result.Errors {
		sb.WriteString("⚠️ " + e + "\n")
	}
	b.api.Send(tgbotapi.NewMessage(message.Chat.ID, sb.String()))
}

// downloadToTemp fetches a URL into a temp file, preserving the extension
// so the importer can tell xlsx from csv
func downloadToTemp(url, fileName string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to download file: %v", err)
	}
	defer resp.Body.Close()

	ext := filepath.Ext(fileName)
	if ext == "" {
		ext = ".xlsx"
	}
	tmp, err := os.CreateTemp("", "hifzbot-import-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %v", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to save file: %v", err)
	}
	return tmp.Name(), nil
}
