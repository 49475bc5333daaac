package reporter

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobpost-extraction/internal/models"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendExtraction posts a freshly extracted job to the configured chat.
func (t *TelegramReporter) SendExtraction(job *models.JobPosting) error {
	salary := job.Salary
	if salary == "" {
		salary = "Not listed"
	}
	location := job.Location
	if location == "" {
		location = "Not listed"
	}

	text := fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"🏢 %s\n"+
			"💰 %s\n"+
			"📍 %s\n"+
			"🛠 %s\n"+
			"🎚 Extracted via tier: %s\n"+
			"🔗 <a href=\"%s\">View Posting</a>",
		job.Title,
		job.Company,
		salary,
		location,
		strings.Join(job.SkillsRequired, ", "),
		job.ExtractionTier,
		job.SourceURL,
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(url string, errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Extraction Failed</b>\n🔗 %s\n%v", url, errReq)
	return t.SendMessage(text)
}
