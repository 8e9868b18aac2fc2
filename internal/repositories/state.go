package repositories

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/entities"
)

const stateFileName = "last_state.json"

// States persists the run-state document.
type States struct {
	path string
}

func NewStateRepository(dataDir string) *States {
	return &States{path: filepath.Join(dataDir, stateFileName)}
}

// Load reads the previous run's state. A missing or corrupt document is
// never fatal: it degrades to empty defaults.
func (r *States) Load(ctx context.Context) entities.RunState {
	empty := entities.RunState{SeenURLs: []string{}, LastNewURLs: []string{}}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("failed to read state document: %v", err)
		}
		return empty
	}

	var state entities.RunState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Warnf("state document is corrupt, starting from empty state: %v", err)
		return empty
	}
	if state.SeenURLs == nil {
		state.SeenURLs = []string{}
	}
	if state.LastNewURLs == nil {
		state.LastNewURLs = []string{}
	}
	return state
}

// Save rewrites the state document wholesale.
func (r *States) Save(ctx context.Context, state entities.RunState) error {
	if state.SeenURLs == nil {
		state.SeenURLs = []string{}
	}
	if state.LastNewURLs == nil {
		state.LastNewURLs = []string{}
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal run state")
	}
	return errors.Wrap(writeFileAtomic(r.path, append(data, '\n')), "write state document")
}
