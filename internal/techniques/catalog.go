// Package techniques holds the lucid-dreaming technique catalog and derives
// practice effectiveness from accumulated practice records.
package techniques

import (
	"fmt"
	"strings"

	"github.com/oneirolab/oneiro/pkg/models"
)

// Catalog lists the built-in techniques in presentation order.
var Catalog = []models.Technique{
	{
		Key:         "MILD",
		Name:        "Mnemonic Induction of Lucid Dreams (MILD)",
		Description: "Uses prospective memory to increase lucid dream frequency.",
		Steps: []string{
			"Set intention to remember you're dreaming",
			"Visualize yourself becoming lucid in a recent dream",
			"Repeat a mantra like 'Next time I'm dreaming, I'll remember I'm dreaming'",
			"Fall asleep while maintaining this intention",
		},
	},
	{
		Key:         "WBTB",
		Name:        "Wake Back To Bed (WBTB)",
		Description: "Wake up after 4-6 hours of sleep, stay awake briefly, then return to sleep.",
		Steps: []string{
			"Set alarm for 4-6 hours after bedtime",
			"When alarm goes off, stay awake for 20-60 minutes",
			"Engage in lucid dream preparation activities",
			"Return to sleep while maintaining awareness",
		},
	},
	{
		Key:         "FILD",
		Name:        "Finger Induced Lucid Dream (FILD)",
		Description: "A subtle finger movement technique to enter directly into a lucid dream.",
		Steps: []string{
			"Wake up after 4-6 hours of sleep",
			"Lie completely still",
			"Gently move index and middle fingers as if playing piano",
			"After 10-20 seconds, perform a reality check",
		},
	},
	{
		Key:         "RC",
		Name:        "Reality Checks",
		Description: "Habitual checks throughout the day to test if you're dreaming.",
		Steps: []string{
			"Perform 10+ reality checks daily",
			"Question your reality: 'Am I dreaming?'",
			"Examine your environment for dream signs",
			"Try to push finger through palm or read text twice",
		},
	},
}

// Lookup finds a technique by key, case-insensitively.
func Lookup(key string) (models.Technique, error) {
	for _, t := range Catalog {
		if strings.EqualFold(t.Key, key) {
			return t, nil
		}
	}
	return models.Technique{}, fmt.Errorf("unknown technique %q", key)
}
