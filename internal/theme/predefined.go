package theme

// DefaultPresetName names the preset whose values are the compiled-in defaults.
const DefaultPresetName = "StationeersServerUI (default)"

var builtinPresets = []Preset{
	{
		Name:  "StationeersServerUI (default)",
		Theme: Theme{
			"--primary":         "#00FFAB",
			"--bg-dark":         "#0a0a14",
			"--bg-panel":        "#1b1b2f8f",
			"--accent":          "#0084ff",
			"--danger":          "#ff3860",
			"--success":         "#48c774",
			"--warning":         "#ffdd57",
			"--text-header":     "#ffffff",
			"--text-bright":     "#e0ffe9",
			"--text-dim":        "#aaaaaa",
			"--text-muted":      "#888888",
			"--surface-dark":    "#232338",
			"--surface-hover":   "#333350",
			"--surface-overlay": "#1b1b2f",
			"--console-info":    "#0af",
			"--console-warning": "#ff0",
			"--console-error":   "#ff3333",
			"--console-success": "#0f0",
		},
	},
	{
		Name:  "Neon Blue",
		Theme: Theme{
			"--primary":         "#00D4FF",
			"--bg-dark":         "#080818",
			"--bg-panel":        "#12122a8f",
			"--accent":          "#7B68EE",
			"--danger":          "#FF4466",
			"--success":         "#00E676",
			"--warning":         "#FFD740",
			"--text-header":     "#FFFFFF",
			"--text-bright":     "#D0F0FF",
			"--text-dim":        "#8899AA",
			"--text-muted":      "#667788",
			"--surface-dark":    "#1A1A3E",
			"--surface-hover":   "#2A2A55",
			"--surface-overlay": "#15152D",
			"--console-info":    "#00D4FF",
			"--console-warning": "#FFD740",
			"--console-error":   "#FF4466",
			"--console-success": "#00E676",
		},
	},
	{
		Name:  "Hot Pink",
		Theme: Theme{
			"--primary":         "#FF1493",
			"--bg-dark":         "#0A0008",
			"--bg-panel":        "#1E0A1A8f",
			"--accent":          "#9B59B6",
			"--danger":          "#FF3030",
			"--success":         "#00E5A0",
			"--warning":         "#FFD700",
			"--text-header":     "#FFFFFF",
			"--text-bright":     "#FFD0E8",
			"--text-dim":        "#AA7799",
			"--text-muted":      "#886688",
			"--surface-dark":    "#2A1025",
			"--surface-hover":   "#3A1A35",
			"--surface-overlay": "#1E0A18",
			"--console-info":    "#FF69B4",
			"--console-warning": "#FFD700",
			"--console-error":   "#FF3030",
			"--console-success": "#00E5A0",
		},
	},
	{
		Name:  "Midnight Purple",
		Theme: Theme{
			"--primary":         "#B388FF",
			"--bg-dark":         "#08061A",
			"--bg-panel":        "#1A1040ef",
			"--accent":          "#82B1FF",
			"--danger":          "#FF5252",
			"--success":         "#69F0AE",
			"--warning":         "#FFD740",
			"--text-header":     "#FFFFFF",
			"--text-bright":     "#E0D0FF",
			"--text-dim":        "#9988BB",
			"--text-muted":      "#776699",
			"--surface-dark":    "#1E1440",
			"--surface-hover":   "#2E2060",
			"--surface-overlay": "#160E30",
			"--console-info":    "#82B1FF",
			"--console-warning": "#FFD740",
			"--console-error":   "#FF5252",
			"--console-success": "#69F0AE",
		},
	},
	{
		Name:  "Colourblind friendly",
		Theme: Theme{
			"--primary":         "#ffb300",
			"--bg-dark":         "#121212",
			"--bg-panel":        "#1e1e1e",
			"--accent":          "#ffb300",
			"--danger":          "#ff3b3b",
			"--success":         "#66d020",
			"--warning":         "#ffdd00",
			"--text-header":     "#ffffff",
			"--text-bright":     "#ffffff",
			"--text-dim":        "#bfbfbf",
			"--text-muted":      "#999999",
			"--surface-dark":    "#2a2a2a",
			"--surface-hover":   "#383838",
			"--surface-overlay": "#1e1e1e",
			"--console-info":    "#ffb300",
			"--console-warning": "#ffdd00",
			"--console-error":   "#ff3b3b",
			"--console-success": "#66d020",
		},
	},
	{
		Name:  "Tynningö",
		Theme: Theme{
			"--primary":         "#6a9955",
			"--bg-dark":         "#1e1e1e",
			"--bg-panel":        "#252526",
			"--accent":          "#6a9955",
			"--danger":          "#ff3860",
			"--success":         "#6a9955",
			"--warning":         "#ce9178",
			"--text-header":     "#d4d4d4",
			"--text-bright":     "#d4d4d4",
			"--text-dim":        "#a9a9a9",
			"--text-muted":      "#808080",
			"--surface-dark":    "#2d2d2d",
			"--surface-hover":   "#3c3c3c",
			"--surface-overlay": "#252526",
			"--console-info":    "#6a9955",
			"--console-warning": "#ce9178",
			"--console-error":   "#ff3860",
			"--console-success": "#6a9955",
		},
	},
	{
		Name:  "Dammstakärret",
		Theme: Theme{
			"--primary":         "#7a9a7a",
			"--bg-dark":         "#121a12",
			"--bg-panel":        "#1b2a1b",
			"--accent":          "#7a9a7a",
			"--danger":          "#ff6b6b",
			"--success":         "#7a9a7a",
			"--warning":         "#c9a67a",
			"--text-header":     "#d9e6d9",
			"--text-bright":     "#d9e6d9",
			"--text-dim":        "#a3b3a3",
			"--text-muted":      "#7a8a7a",
			"--surface-dark":    "#243224",
			"--surface-hover":   "#2e3a2e",
			"--surface-overlay": "#1b2a1b",
			"--console-info":    "#7a9a7a",
			"--console-warning": "#c9a67a",
			"--console-error":   "#ff6b6b",
			"--console-success": "#7a9a7a",
		},
	},
	{
		Name:  "Ramsö Sjöwind",
		Theme: Theme{
			"--primary":         "#68c1e8",
			"--bg-dark":         "#1a2a38",
			"--bg-panel":        "#253545",
			"--accent":          "#68c1e8",
			"--danger":          "#ff6b6b",
			"--success":         "#68c1e8",
			"--warning":         "#f0ad4e",
			"--text-header":     "#e0eaf0",
			"--text-bright":     "#e0eaf0",
			"--text-dim":        "#b0c0d0",
			"--text-muted":      "#8aa0b0",
			"--surface-dark":    "#2f4055",
			"--surface-hover":   "#3a4c66",
			"--surface-overlay": "#253545",
			"--console-info":    "#68c1e8",
			"--console-warning": "#f0ad4e",
			"--console-error":   "#ff6b6b",
			"--console-success": "#68c1e8",
		},
	},
	{
		Name:  "Rindö Solnedgang",
		Theme: Theme{
			"--primary":         "#ff9e7a",
			"--bg-dark":         "#272133",
			"--bg-panel":        "#332940",
			"--accent":          "#ff9e7a",
			"--danger":          "#ff6b6b",
			"--success":         "#66d020",
			"--warning":         "#ffcc66",
			"--text-header":     "#f5e6ff",
			"--text-bright":     "#f5e6ff",
			"--text-dim":        "#d1b6e1",
			"--text-muted":      "#b89ac7",
			"--surface-dark":    "#3e304d",
			"--surface-hover":   "#4b3a5d",
			"--surface-overlay": "#332940",
			"--console-info":    "#ff9e7a",
			"--console-warning": "#ffcc66",
			"--console-error":   "#ff6b6b",
			"--console-success": "#66d020",
		},
	},
	{
		Name:  "Mint Choklad",
		Theme: Theme{
			"--primary":         "#7fe0c3",
			"--bg-dark":         "#1e2721",
			"--bg-panel":        "#26322a",
			"--accent":          "#7fe0c3",
			"--danger":          "#ff6b6b",
			"--success":         "#7fe0c3",
			"--warning":         "#d9b382",
			"--text-header":     "#e0f0e8",
			"--text-bright":     "#e0f0e8",
			"--text-dim":        "#b0c5b8",
			"--text-muted":      "#8fa9a3",
			"--surface-dark":    "#2e3d33",
			"--surface-hover":   "#38493e",
			"--surface-overlay": "#26322a",
			"--console-info":    "#7fe0c3",
			"--console-warning": "#d9b382",
			"--console-error":   "#ff6b6b",
			"--console-success": "#7fe0c3",
		},
	},
	{
		Name:  "Lavendel Fält",
		Theme: Theme{
			"--primary":         "#b28dff",
			"--bg-dark":         "#2b2440",
			"--bg-panel":        "#352e4e",
			"--accent":          "#b28dff",
			"--danger":          "#ff6b6b",
			"--success":         "#66d020",
			"--warning":         "#ffad9c",
			"--text-header":     "#ece8ff",
			"--text-bright":     "#ece8ff",
			"--text-dim":        "#c7c0e3",
			"--text-muted":      "#a99cc9",
			"--surface-dark":    "#3f385c",
			"--surface-hover":   "#4a426a",
			"--surface-overlay": "#352e4e",
			"--console-info":    "#b28dff",
			"--console-warning": "#ffad9c",
			"--console-error":   "#ff6b6b",
			"--console-success": "#66d020",
		},
	},
	{
		Name:  "Midsommar",
		Theme: Theme{
			"--primary":         "#ffd700",
			"--bg-dark":         "#1a1a2e",
			"--bg-panel":        "#232342",
			"--accent":          "#ffd700",
			"--danger":          "#ff6b6b",
			"--success":         "#66d020",
			"--warning":         "#ff6b9d",
			"--text-header":     "#fff4d6",
			"--text-bright":     "#fff4d6",
			"--text-dim":        "#e6d5a8",
			"--text-muted":      "#ccc088",
			"--surface-dark":    "#2d2d56",
			"--surface-hover":   "#3a3a6a",
			"--surface-overlay": "#232342",
			"--console-info":    "#ffd700",
			"--console-warning": "#ff6b9d",
			"--console-error":   "#ff6b6b",
			"--console-success": "#66d020",
		},
	},
	{
		Name:  "Kireness",
		Theme: Theme{
			"--primary":         "#80DEEA",
			"--bg-dark":         "#0A1215",
			"--bg-panel":        "#1225308f",
			"--accent":          "#4FC3F7",
			"--danger":          "#EF5350",
			"--success":         "#66BB6A",
			"--warning":         "#FFA726",
			"--text-header":     "#ECEFF1",
			"--text-bright":     "#B0BEC5",
			"--text-dim":        "#78909C",
			"--text-muted":      "#546E7A",
			"--surface-dark":    "#1A2D35",
			"--surface-hover":   "#253D48",
			"--surface-overlay": "#152228",
			"--console-info":    "#4FC3F7",
			"--console-warning": "#FFA726",
			"--console-error":   "#EF5350",
			"--console-success": "#66BB6A",
		},
	},
	{
		Name:  "Kiruna",
		Theme: Theme{
			"--primary":         "#3ddbd9",
			"--bg-dark":         "#0d1b2a",
			"--bg-panel":        "#1b263b",
			"--accent":          "#3ddbd9",
			"--danger":          "#ee6c4d",
			"--success":         "#3ddbd9",
			"--warning":         "#ee6c4d",
			"--text-header":     "#e0fbfc",
			"--text-bright":     "#e0fbfc",
			"--text-dim":        "#98c1d9",
			"--text-muted":      "#6a9ab8",
			"--surface-dark":    "#253347",
			"--surface-hover":   "#2f3e53",
			"--surface-overlay": "#1b263b",
			"--console-info":    "#3ddbd9",
			"--console-warning": "#ee6c4d",
			"--console-error":   "#ee6c4d",
			"--console-success": "#3ddbd9",
		},
	},
	{
		Name:  "Lingon",
		Theme: Theme{
			"--primary":         "#ff3864",
			"--bg-dark":         "#2d1b1e",
			"--bg-panel":        "#3d252a",
			"--accent":          "#ff3864",
			"--danger":          "#ff3864",
			"--success":         "#7fe0c3",
			"--warning":         "#ffa07a",
			"--text-header":     "#ffe8ed",
			"--text-bright":     "#ffe8ed",
			"--text-dim":        "#deb8c4",
			"--text-muted":      "#c49aaa",
			"--surface-dark":    "#4d2f36",
			"--surface-hover":   "#5d3942",
			"--surface-overlay": "#3d252a",
			"--console-info":    "#ff3864",
			"--console-warning": "#ffa07a",
			"--console-error":   "#ff3864",
			"--console-success": "#7fe0c3",
		},
	},
	{
		Name:  "Saffran",
		Theme: Theme{
			"--primary":         "#f4a261",
			"--bg-dark":         "#2a1f15",
			"--bg-panel":        "#3a2a1e",
			"--accent":          "#f4a261",
			"--danger":          "#e76f51",
			"--success":         "#66d020",
			"--warning":         "#e76f51",
			"--text-header":     "#fff5e6",
			"--text-bright":     "#fff5e6",
			"--text-dim":        "#e6d4b8",
			"--text-muted":      "#ccb8a0",
			"--surface-dark":    "#4a3527",
			"--surface-hover":   "#5a4030",
			"--surface-overlay": "#3a2a1e",
			"--console-info":    "#f4a261",
			"--console-warning": "#e76f51",
			"--console-error":   "#e76f51",
			"--console-success": "#66d020",
		},
	},
	{
		Name:  "Göteborg",
		Theme: Theme{
			"--primary":         "#ff10f0",
			"--bg-dark":         "#0f0320",
			"--bg-panel":        "#1a0835",
			"--accent":          "#ff10f0",
			"--danger":          "#ffff00",
			"--success":         "#39ff14",
			"--warning":         "#ffff00",
			"--text-header":     "#f0e6ff",
			"--text-bright":     "#f0e6ff",
			"--text-dim":        "#c8b6e2",
			"--text-muted":      "#a899c7",
			"--surface-dark":    "#250d4a",
			"--surface-hover":   "#30125f",
			"--surface-overlay": "#1a0835",
			"--console-info":    "#00f0ff",
			"--console-warning": "#ffff00",
			"--console-error":   "#ff10f0",
			"--console-success": "#39ff14",
		},
	},
	{
		Name:  "Blåbär",
		Theme: Theme{
			"--primary":         "#6b88ff",
			"--bg-dark":         "#1a1f3a",
			"--bg-panel":        "#242c4a",
			"--accent":          "#6b88ff",
			"--danger":          "#ff6b6b",
			"--success":         "#66d020",
			"--warning":         "#c77dff",
			"--text-header":     "#e8eeff",
			"--text-bright":     "#e8eeff",
			"--text-dim":        "#b8c8e8",
			"--text-muted":      "#9ab0d8",
			"--surface-dark":    "#2e395a",
			"--surface-hover":   "#38466a",
			"--surface-overlay": "#242c4a",
			"--console-info":    "#6b88ff",
			"--console-warning": "#c77dff",
			"--console-error":   "#ff6b6b",
			"--console-success": "#66d020",
		},
	},
	{
		Name:  "Rabarber",
		Theme: Theme{
			"--primary":         "#ff6b9d",
			"--bg-dark":         "#1f1a1d",
			"--bg-panel":        "#2d242a",
			"--accent":          "#ff6b9d",
			"--danger":          "#ff6b9d",
			"--success":         "#7fe0c3",
			"--warning":         "#ffa07a",
			"--text-header":     "#ffe8f5",
			"--text-bright":     "#ffe8f5",
			"--text-dim":        "#e6b8d8",
			"--text-muted":      "#cc9acc",
			"--surface-dark":    "#3b2e37",
			"--surface-hover":   "#493844",
			"--surface-overlay": "#2d242a",
			"--console-info":    "#ff6b9d",
			"--console-warning": "#ffa07a",
			"--console-error":   "#ff6b9d",
			"--console-success": "#7fe0c3",
		},
	},
}

var defaultCatalog = mustCatalog(builtinPresets)

// returns the built-in preset catalog
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// returns the compiled-in default value of every built-in variable
func DefaultValues() Theme {
	t, _ := defaultCatalog.Get(DefaultPresetName)
	return t
}
