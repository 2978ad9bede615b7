package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconDoctor   = "" // stethoscope
	IconCheck    = "" // check
	IconX        = "" // x
	IconWarning  = "" // warning
	IconPackage  = "" // archive/package
	IconShield   = "" // shield
	IconGlobe    = "" // globe
	IconTrash    = "" // trash
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconLogs     = "" // file-text
)
