package suggestionsession

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/interfacing/internal/errors"
	redisclient "github.com/KirkDiggler/interfacing/internal/redis"
)

// SweepInput controls a scan for unreadable sessions
type SweepInput struct {
	// Delete removes what the scan finds; otherwise it only reports
	Delete bool
}

// SweepOutput reports what a scan found
type SweepOutput struct {
	Checked int
	Corrupt []string
	Deleted int
}

// Sweep scans every stored session and reports entries that no longer
// decode or carry no session id
func Sweep(ctx context.Context, client redisclient.Client, input SweepInput) (*SweepOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client is required")
	}

	out := &SweepOutput{Corrupt: []string{}}
	iter := client.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.Checked++

		raw, err := client.Get(ctx, key).Bytes()
		if err != nil {
			// Expired between SCAN and GET
			slog.Debug("Skipping unreadable session key", "key", key, "error", err)
			continue
		}

		var session Session
		if err := json.Unmarshal(raw, &session); err != nil || session.SessionID == "" {
			out.Corrupt = append(out.Corrupt, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.FromContext(err, "failed to scan sessions")
	}

	if !input.Delete || len(out.Corrupt) == 0 {
		return out, nil
	}

	n, err := client.Del(ctx, out.Corrupt...).Result()
	if err != nil {
		return nil, errors.FromContext(err, "failed to delete corrupt sessions")
	}
	out.Deleted = int(n)

	slog.Info("Corrupt sessions deleted",
		"checked", out.Checked,
		"deleted", out.Deleted,
	)
	return out, nil
}
