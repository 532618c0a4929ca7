package engine

import (
	"fmt"

	"space-rogue/pkg/logger"

	"github.com/sirupsen/logrus"
)

// LogEntry - строка игрового журнала сектора
type LogEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
	Tick int    `json:"tick"`
}

// AddLog добавляет лог в историю инстанса
func (i *Instance) AddLog(text, logType string) {
	i.Logs = append(i.Logs, LogEntry{
		ID:   fmt.Sprintf("%d_%d_%d", i.ID, i.CurrentTick, len(i.Logs)),
		Text: text,
		Type: logType,
		Tick: i.CurrentTick,
	})
	logger.Log.WithFields(logrus.Fields{
		"instance":  i.ID,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}
