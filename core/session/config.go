package session

// Config holds the paths to the BMS data sources.
type Config struct {
	// CatalogFile is the XML catalog (Falcon4_CT.xml).
	CatalogFile string `mapstructure:"catalog_file" default:"Falcon4_CT.xml"`
	// ReportFile is the line-oriented parent/child relationship report.
	ReportFile string `mapstructure:"report_file" default:"parents.txt"`
	// TextureDir is the standard-resolution texture directory.
	TextureDir string `mapstructure:"texture_dir" default:"KoreaObj"`
	// HighResTextureDir is the high-resolution texture directory.
	HighResTextureDir string `mapstructure:"highres_texture_dir" default:"KoreaObj_HiRes"`
	// ModelsDir holds per-model directories with materials.mtl files.
	// Empty disables material enrichment.
	ModelsDir string `mapstructure:"models_dir" default:""`
	// AcdataDir holds the *.txtpb aircraft data files. Empty disables
	// cockpit records.
	AcdataDir string `mapstructure:"acdata_dir" default:""`
	// CkptArtDir holds the per-cockpit 3dCkpit.dat files.
	CkptArtDir string `mapstructure:"ckptart_dir" default:""`
	// RulesFile is an optional YAML texture classification rule table.
	// Empty uses the built-in defaults.
	RulesFile string `mapstructure:"rules_file" default:""`
}
