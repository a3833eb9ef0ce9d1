package config

import "path/filepath"

const (
	LauncherFile   = "ic_launcher.png"
	RoundFile      = "ic_launcher_round.png"
	ForegroundFile = "ic_launcher_foreground.png"

	densityDirPrefix = "mipmap-"
)

// Output Structure:
// res/
//  ├── mipmap-mdpi/ (ic_launcher, ic_launcher_round, ic_launcher_foreground)
//  ├── ...
//  └── mipmap-xxxhdpi/

func DensityDir(resDir, density string) string {
	return filepath.Join(resDir, densityDirPrefix+density)
}
