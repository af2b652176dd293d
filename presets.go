package tab2img

import (
	"context"
	"fmt"
)

// Supported preset locales.
const (
	LocaleEN = "en"
	LocaleFR = "fr"
)

// presetLabels maps dataset column names to display labels per locale.
// Column names not in the map keep their dataset name, so the preset can be
// applied to any dataset that shares a subset of these columns.
var presetLabels = map[string]map[string]string{
	LocaleEN: {
		"variable":  "Variable",
		"estimate":  "Estimate",
		"std_error": "Std. Error",
		"t_value":   "t value",
		"p_value":   "p value",
		"ci_low":    "CI (lower)",
		"ci_high":   "CI (upper)",
		"signif":    "Signif.",
		"n":         "N",
	},
	LocaleFR: {
		"variable":  "Variable",
		"estimate":  "Estimation",
		"std_error": "Erreur std.",
		"t_value":   "Valeur t",
		"p_value":   "Valeur p",
		"ci_low":    "IC (inf.)",
		"ci_high":   "IC (sup.)",
		"signif":    "Signif.",
		"n":         "N",
	},
}

// PresetLocales returns the locales supported by RenderPreset.
func PresetLocales() []string {
	return []string{LocaleEN, LocaleFR}
}

// PresetLabels returns the display labels for the dataset columns under the
// given locale. Unknown column names keep their dataset name.
// Returns ErrUnknownLocale for unsupported locales.
func PresetLabels(ds *Dataset, locale string) ([]string, error) {
	table, ok := presetLabels[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: en, fr)", ErrUnknownLocale, locale)
	}

	names := ds.ColumnNames()
	labels := make([]string, len(names))
	for i, name := range names {
		if label, ok := table[name]; ok {
			labels[i] = label
		} else {
			labels[i] = name
		}
	}
	return labels, nil
}

// RenderPreset applies the fixed bilingual header-label set for the locale,
// then delegates to RenderImage with filename as the output path.
func (r *Renderer) RenderPreset(ctx context.Context, ds *Dataset, filename, locale string, opts Options) (*ImageResult, error) {
	if ds == nil || ds.NumCols() == 0 {
		return nil, ErrEmptyDataset
	}

	labels, err := PresetLabels(ds, locale)
	if err != nil {
		return nil, err
	}

	opts.Labels = labels
	opts.Name = filename
	return r.RenderImage(ctx, ds, opts)
}
