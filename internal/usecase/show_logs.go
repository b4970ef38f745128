package usecase

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/runoshun/git-todo/internal/domain"
)

// ShowLogsInput contains the parameters for showing the log file.
type ShowLogsInput struct {
	TaskID int // Only entries scoped to this task (0 = all)
	Lines  int // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing the log file.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Selected log lines
}

// ShowLogs is the use case for viewing the application log.
type ShowLogs struct {
	logPath string
}

// NewShowLogs creates a new ShowLogs use case.
// An empty logPath means logging is disabled.
func NewShowLogs(logPath string) *ShowLogs {
	return &ShowLogs{logPath: logPath}
}

// Execute reads the log file and returns the selected lines.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	if uc.logPath == "" {
		return nil, domain.ErrLogDisabled
	}

	content, err := os.ReadFile(uc.logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", uc.logPath, domain.ErrNoLogFile)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if in.TaskID > 0 {
		lines = linesForTask(lines, in.TaskID)
	}
	if in.Lines > 0 && len(lines) > in.Lines {
		lines = lines[len(lines)-in.Lines:]
	}

	return &ShowLogsOutput{
		LogPath: uc.logPath,
		Content: strings.Join(lines, "\n"),
	}, nil
}

// linesForTask keeps the lines whose scope field names taskID.
func linesForTask(lines []string, taskID int) []string {
	scope := "scope=task-" + strconv.Itoa(taskID)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, scope+" ") || strings.HasSuffix(line, scope) {
			out = append(out, line)
		}
	}
	return out
}
