package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconFont      = "" // font
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = ""
	IconGithub    = ""
	IconHeart     = ""
	IconGo        = "" // go gopher

	IconDoctor  = "" // stethoscope
	IconCheck   = ""
	IconX       = ""
	IconWarning = ""

	IconTrash    = ""
	IconFolder   = ""
	IconConfig   = ""
	IconDatabase = ""
	IconImage    = "" // image file
	IconCache    = ""
	IconLogs     = "" // file-text

	IconSearch = ""
	IconEye    = "" // watching
	IconCopy   = ""
)
