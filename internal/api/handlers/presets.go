package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"consav/internal/api/models"
	"consav/internal/config"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// PresetHandler handles parameter-preset requests
type PresetHandler struct {
	presetDir string
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler() *PresetHandler {
	return &PresetHandler{presetDir: presetDir()}
}

// presetDir resolves the preset directory: $PRESET_DIR if set, otherwise
// examples/presets under the working directory.
func presetDir() string {
	dir := os.Getenv("PRESET_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "presets")
		} else {
			dir = "./examples/presets"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	presets := []models.PresetInfo{}

	entries, err := os.ReadDir(h.presetDir)
	if err != nil {
		log.Printf("PresetHandler: Failed to read preset directory %s: %v", h.presetDir, err)
		c.JSON(http.StatusOK, gin.H{"presets": presets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.presetDir, entry.Name())
		info, err := loadPresetInfo(path, entry.Name())
		if err != nil {
			log.Printf("PresetHandler: Failed to load preset file %s: %v", path, err)
			continue // Skip invalid files
		}
		presets = append(presets, *info)
	}

	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

func loadPresetInfo(path, filename string) (*models.PresetInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Model config.ModelConfig `yaml:"model"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	// The filename without extension is the preset ID
	// (e.g. "baseline.yaml" -> "baseline").
	id := strings.TrimSuffix(filename, ".yaml")

	name := wrapper.Model.Name
	if name == "" {
		name = id
	}

	return &models.PresetInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.PresetSpecs{
			Rho:   floatVal(wrapper.Model.Rho),
			Nu:    floatVal(wrapper.Model.Nu),
			Beta:  floatVal(wrapper.Model.Beta),
			Delta: floatVal(wrapper.Model.Delta),
		},
	}, nil
}

func floatVal(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
