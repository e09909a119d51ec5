package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// Paths holds the locations of the files mastery reads and writes.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	statusFileName string
	logFileName    string

	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
}

var (
	paths     *Paths
	pathsOnce sync.Once
)

// InitializePaths resolves all file paths. It must be called once at program
// startup. Setting MASTERY_ENV keeps development data separate.
func InitializePaths() error {
	var initErr error

	pathsOnce.Do(func() {
		p := &Paths{
			configDir:      "mastery",
			configFileName: "config.yml",
			dbFileName:     "mastery.db",
			statusFileName: "status.json",
			logFileName:    "mastery.log",
		}

		p.applyEnvironmentOverrides()

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

func must() *Paths {
	if paths == nil {
		panic("config.InitializePaths() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return must().configFilePath
}

func DBFilePath() string {
	return must().dbFilePath
}

func StatusFilePath() string {
	return must().statusFilePath
}

func LogFilePath() string {
	return must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv("MASTERY_ENV"))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("mastery_%s.db", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.logFileName = fmt.Sprintf("mastery_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.configDir, p.configFileName),
	)
	if err != nil {
		return errResolvePath.Wrap(err)
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return errResolvePath.Wrap(err)
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)
	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)
	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
