package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GroupPath   string
	RepoName    string
	HookID      int64
	AccessToken string
	RunID       string
)

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x AccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AccessToken) String() string {
	return "***********"
}
