package calibration

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
)

// CurrentProfileVersion gates profile compatibility across releases; a
// profile written by an older or newer version is never trusted.
const CurrentProfileVersion = 1

// DefaultProfileFileName is the file name GetDefaultProfilePath places
// under the user's home directory.
const DefaultProfileFileName = ".bignum_calibration.toml"

// CalibrationProfile records the hardware a calibration run was performed
// on and the FFT threshold it found, so a future run can skip
// recalibrating on unchanged hardware.
type CalibrationProfile struct {
	NumCPU              int       `toml:"num_cpu"`
	GOARCH              string    `toml:"goarch"`
	GOOS                string    `toml:"goos"`
	GoVersion           string    `toml:"go_version"`
	WordSize            int       `toml:"word_size"`
	ProfileVersion      int       `toml:"profile_version"`
	CalibratedAt        time.Time `toml:"calibrated_at"`
	OptimalFFTThreshold int       `toml:"optimal_fft_threshold"`
	CalibrationDuration string    `toml:"calibration_duration"`
}

// NewProfile captures the current machine's identity with no threshold
// recorded yet.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		ProfileVersion: CurrentProfileVersion,
		CalibratedAt:   time.Now(),
	}
}

// IsValid reports whether p was calibrated on hardware matching the
// current machine, under the current profile format.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	wordSize := 32 << (^uint(0) >> 63)
	return p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == wordSize &&
		p.ProfileVersion == CurrentProfileVersion
}

// IsStale reports whether p is older than maxAge, or nil.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// String renders a short human-readable summary of p.
func (p *CalibrationProfile) String() string {
	if p == nil {
		return "<nil calibration profile>"
	}
	return fmt.Sprintf(
		"CalibrationProfile{cpu=%d arch=%s os=%s go=%s word=%d fft_threshold=%d calibrated_at=%s}",
		p.NumCPU, p.GOARCH, p.GOOS, p.GoVersion, p.WordSize, p.OptimalFFTThreshold,
		p.CalibratedAt.Format(time.RFC3339))
}

// SaveProfile writes p to path in TOML, creating parent directories as
// needed.
func (p *CalibrationProfile) SaveProfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("calibration: create profile dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("calibration: create profile file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("calibration: encode profile: %w", err)
	}
	return nil
}

// loadProfile reads and decodes a CalibrationProfile from path.
func loadProfile(path string) (*CalibrationProfile, error) {
	var p CalibrationProfile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("calibration: decode profile %s: %w", path, err)
	}
	return &p, nil
}

// LoadOrCreateProfile loads the profile at path if present, otherwise
// returns a fresh one for the current machine. The bool reports whether an
// existing profile was loaded.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	if p, err := loadProfile(path); err == nil {
		return p, true
	}
	return NewProfile(), false
}

// GetDefaultProfilePath returns DefaultProfileFileName under the user's
// home directory, falling back to the current directory if home can't be
// resolved. LoadOrCreateProfile itself always reads the path it is given.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}
