package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

//go:embed seed/doctors.yaml
var defaultSeed []byte

// fileCatalog формат YAML файла каталога
type fileCatalog struct {
	Doctors []fileDoctor `yaml:"doctors"`
}

type fileDoctor struct {
	ID                 string         `yaml:"id"`
	Name               string         `yaml:"name"`
	Specialization     string         `yaml:"specialization"`
	ProfileImage       string         `yaml:"profileImage"`
	AvailabilityStatus string         `yaml:"availabilityStatus"`
	Experience         string         `yaml:"experience"`
	Rating             float64        `yaml:"rating"`
	Location           string         `yaml:"location"`
	About              string         `yaml:"about"`
	Availability       []fileTimeSlot `yaml:"availability"`
}

type fileTimeSlot struct {
	Date  string   `yaml:"date"`
	Slots []string `yaml:"slots"`
}

// FileSource загружает каталог из YAML файла.
// Пустой путь означает встроенный демонстрационный каталог.
type FileSource struct {
	path string
}

// NewFileSource создает источник каталога из файла
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load читает, разбирает и проверяет каталог
func (s *FileSource) Load(_ context.Context) ([]domain.Doctor, error) {
	data := defaultSeed
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadSource, s.path, err)
		}
	}

	doctors, err := Decode(data)
	if err != nil {
		return nil, err
	}

	if err := Validate(doctors); err != nil {
		return nil, err
	}

	return doctors, nil
}

// Decode разбирает YAML каталог в доменные модели
func Decode(data []byte) ([]domain.Doctor, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	doctors := make([]domain.Doctor, len(fc.Doctors))
	for i, fd := range fc.Doctors {
		availability := make([]domain.TimeSlot, len(fd.Availability))
		for j, ts := range fd.Availability {
			slots := ts.Slots
			if slots == nil {
				slots = []string{}
			}
			availability[j] = domain.TimeSlot{Date: ts.Date, Slots: slots}
		}

		doctors[i] = domain.Doctor{
			ID:                 fd.ID,
			Name:               fd.Name,
			Specialization:     fd.Specialization,
			ProfileImage:       fd.ProfileImage,
			AvailabilityStatus: domain.AvailabilityStatus(fd.AvailabilityStatus),
			Experience:         fd.Experience,
			Rating:             fd.Rating,
			Location:           fd.Location,
			About:              fd.About,
			Availability:       availability,
		}
	}

	return doctors, nil
}
