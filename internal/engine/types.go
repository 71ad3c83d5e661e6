package engine

// Dice defaults for a skill check
const (
	DefaultDiceCount = 2
	DefaultDieSize   = 6
)

// GenerateInput contains a prompt and its sampling options
type GenerateInput struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// GenerateOutput contains the model's raw text
type GenerateOutput struct {
	Text string
}

// RollCheckInput identifies the skill and difficulty to check against
type RollCheckInput struct {
	SkillID string
	DC      int
}

// RollCheckOutput holds the check. A nil Check means the engine could
// not perform it.
type RollCheckOutput struct {
	Check *CheckResult
}

// CheckResult is the engine's view of a resolved check
type CheckResult struct {
	Roll        int
	Modifier    int
	Total       int
	DC          int
	Success     bool
	IsBoxcars   bool
	IsSnakeEyes bool

	// Zero values mean 2d6
	DiceCount int
	DieSize   int
}

// MaxRoll is the highest raw roll the check's dice can produce
func (c *CheckResult) MaxRoll() int {
	count, size := c.dice()
	return count * size
}

// MinRoll is the lowest raw roll the check's dice can produce
func (c *CheckResult) MinRoll() int {
	count, _ := c.dice()
	return count
}

func (c *CheckResult) dice() (count, size int) {
	count, size = c.DiceCount, c.DieSize
	if count <= 0 {
		count = DefaultDiceCount
	}
	if size <= 0 {
		size = DefaultDieSize
	}
	return count, size
}
