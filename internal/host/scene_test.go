package host_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/host"
)

const sceneYAML = `session_id: s-1
messages:
  - is_user: true
    content: "Who are you?"
  - name: Kim
    content: "Lieutenant Kim Kitsuragi."
  - content: "..."
health: {current: 2, max: 10}
morale: {current: 7, max: 8, temp: 2}
conditions:
  - {id: hangover, name: Hangover}
skill_levels:
  logic: 4
voices:
  logic:
    personality: Custom
    speaking_style: Terse
`

type SceneTestSuite struct {
	suite.Suite
	dir string
}

func TestSceneSuite(t *testing.T) {
	suite.Run(t, new(SceneTestSuite))
}

func (s *SceneTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *SceneTestSuite) writeScene() string {
	path := filepath.Join(s.dir, "scene.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(sceneYAML), 0o600))
	return path
}

func (s *SceneTestSuite) TestLoadScene() {
	scene, err := host.LoadScene(s.writeScene())
	s.Require().NoError(err)

	s.Assert().Equal("s-1", scene.SessionID())
	s.Assert().Equal(2, scene.Health().Current)
	s.Assert().Equal(10, scene.Morale().EffectiveMax())
	s.Assert().Equal([]entities.Condition{{ID: "hangover", Name: "Hangover"}}, scene.Conditions())
	s.Assert().Equal(4, scene.SkillLevel("logic"))
	s.Assert().Equal(0, scene.SkillLevel("drama"))

	voice := scene.SkillVoice("logic")
	s.Require().NotNil(voice)
	s.Assert().Equal("Terse", voice.SpeakingStyle)
	s.Assert().Nil(scene.SkillVoice("drama"))
}

func (s *SceneTestSuite) TestRecentMessages() {
	scene, err := host.LoadScene(s.writeScene())
	s.Require().NoError(err)

	s.Assert().Len(scene.RecentMessages(10), 3)
	s.Assert().Empty(scene.RecentMessages(0))

	last := scene.RecentMessages(2)
	s.Require().Len(last, 2)
	s.Assert().Equal("Kim", last[0].Name)
	s.Assert().Equal("...", last[1].Content)
}

func (s *SceneTestSuite) TestLoadSceneMissing() {
	_, err := host.LoadScene(filepath.Join(s.dir, "missing.yaml"))
	s.Assert().True(errors.IsNotFound(err))
}

func (s *SceneTestSuite) TestLoadSceneInvalid() {
	path := filepath.Join(s.dir, "bad.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("messages: [\n"), 0o600))

	_, err := host.LoadScene(path)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SceneTestSuite) TestSaveRoundTrip() {
	scene, err := host.LoadScene(s.writeScene())
	s.Require().NoError(err)

	scene.AppendMessage(entities.Message{IsUser: true, Content: "I look around."})
	scene.SetSessionID("s-2")

	out := filepath.Join(s.dir, "out.yaml")
	s.Require().NoError(scene.Save(out))

	reloaded, err := host.LoadScene(out)
	s.Require().NoError(err)
	s.Assert().Equal("s-2", reloaded.SessionID())
	s.Assert().Len(reloaded.RecentMessages(10), 4)
}
