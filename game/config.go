package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	NumMines int      `yaml:"mines"`
	Mode     GameMode `yaml:"-"`
	ModeName string   `yaml:"mode"`

	Seed int64 `yaml:"seed"`

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string `yaml:"snapshots_dir"`

	Logger logrus.FieldLogger `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:    30,
		Height:   16,
		NumMines: 99,
		Mode:     Classic,
		Logger:   logrus.StandardLogger(),
	}
}

// LoadConfig overlays the YAML document in path onto config
func LoadConfig(path string, config *GameConfig) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(b, config); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}

	if config.ModeName != "" {
		mode, ok := GameModes[config.ModeName]
		if !ok {
			return errors.Errorf("invalid game mode %q in %s", config.ModeName, path)
		}
		config.Mode = mode
	}
	return nil
}

func (config GameConfig) Validate() error {
	switch {
	case config.Width <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "width must be positive, got %d", config.Width)
	case config.Height <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "height must be positive, got %d", config.Height)
	case config.NumMines < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "negative number of mines: %d", config.NumMines)
	case config.NumMines >= config.Width*config.Height:
		return errors.Wrapf(ErrInvalidConfiguration,
			"not enough space for %d mines and a safe cell on a %dx%d board",
			config.NumMines, config.Width, config.Height)
	}
	return nil
}

func (config GameConfig) logger() logrus.FieldLogger {
	if config.Logger == nil {
		return logrus.StandardLogger()
	}
	return config.Logger
}

func (config GameConfig) saveSnapshot(board *Board) (string, error) {
	if config.SavedSnapshotsDir == "" {
		return "", nil
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return "", err
		}
	} else if !stat.Mode().IsDir() {
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	path := filepath.Join(config.SavedSnapshotsDir, config.generateReplayFilename(board, time.Now()))
	base := strings.TrimSuffix(path, ".yaml")

	// Games ending within the same second get a numeric suffix
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	for i := 1; os.IsExist(err); i++ {
		path = fmt.Sprintf("%s-%d.yaml", base, i)
		file, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	snapshot := board.BoardSnapshot()
	if _, err := file.WriteString(snapshot.Serialize()); err != nil {
		return "", err
	}
	return path, nil
}

func (config GameConfig) generateReplayFilename(board *Board, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch board.outcome {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
