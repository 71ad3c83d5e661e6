package suggestionsession_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/interfacing/internal/errors"
	suggestionsession "github.com/KirkDiggler/interfacing/internal/repositories/suggestion_session"
	"github.com/KirkDiggler/interfacing/internal/testutils"
)

func seedSessions(mr *miniredis.Miniredis) {
	_ = mr.Set("suggestion_session:good", `{"sessionId":"good","state":"ready","suggestions":[]}`)
	_ = mr.Set("suggestion_session:broken", `{"sessionId":`)
	_ = mr.Set("suggestion_session:anonymous", `{"state":"idle"}`)
	_ = mr.Set("dice_session:good:skill_checks", `not ours`)
}

func TestSweep_ReportOnly(t *testing.T) {
	client, mr := testutils.CreateTestRedisClientWithData(t, seedSessions)

	out, err := suggestionsession.Sweep(context.Background(), client, suggestionsession.SweepInput{})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Checked)
	assert.ElementsMatch(t, []string{"suggestion_session:broken", "suggestion_session:anonymous"}, out.Corrupt)
	assert.Equal(t, 0, out.Deleted)
	assert.True(t, mr.Exists("suggestion_session:broken"))
}

func TestSweep_Delete(t *testing.T) {
	client, mr := testutils.CreateTestRedisClientWithData(t, seedSessions)

	out, err := suggestionsession.Sweep(context.Background(), client, suggestionsession.SweepInput{Delete: true})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Deleted)
	assert.False(t, mr.Exists("suggestion_session:broken"))
	assert.False(t, mr.Exists("suggestion_session:anonymous"))
	assert.True(t, mr.Exists("suggestion_session:good"))
	assert.True(t, mr.Exists("dice_session:good:skill_checks"))
}

func TestSweep_Empty(t *testing.T) {
	client, _ := testutils.CreateTestRedisClient(t)

	out, err := suggestionsession.Sweep(context.Background(), client, suggestionsession.SweepInput{Delete: true})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Checked)
	assert.Empty(t, out.Corrupt)
}

func TestSweep_NilClient(t *testing.T) {
	_, err := suggestionsession.Sweep(context.Background(), nil, suggestionsession.SweepInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
