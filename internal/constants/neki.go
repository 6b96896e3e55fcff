package constants

const (
	// LevelThreshold is the amount of total neki required per level.
	// Level is derived as totalNeki/LevelThreshold + 1.
	LevelThreshold = 1000

	// NekiPerArabicLetter is the neki awarded per remaining Arabic base letter
	// when valuing a tasbih from its Arabic source text
	NekiPerArabicLetter = 10

	// GardenTreeThreshold is the minimum daily count for a tasbih to plant a
	// tree at rollover
	GardenTreeThreshold = 100

	// MilestoneStep is the repetition interval at which milestone events fire
	MilestoneStep = 100

	// JournalXP is the XP granted per journal entry (and deducted on deletion)
	JournalXP = 100

	// GeneralTasbihID identifies the singleton general tasbih that lives
	// outside the user-editable list and never earns neki
	GeneralTasbihID = "general_tasbih"
)
