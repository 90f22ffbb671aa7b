package common

const (
	SrcFileExtension = ".yog"
	ConfigFileName   = "yog.toml"
	YogVersion       = "0.3.0"
)
