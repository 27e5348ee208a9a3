package logging

import (
	"context"

	"github.com/google/uuid"
)

func GetRunIDFromCtx(ctx context.Context) string {
	if v := ctx.Value(runKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func MakeContextWithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runKey, runID)
}

func MakeContextWithNewRunID(ctx context.Context) context.Context {
	return MakeContextWithRunID(ctx, uuid.New().String())
}
