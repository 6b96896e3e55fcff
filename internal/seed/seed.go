// Package seed provides the built-in default data used whenever a persisted
// collection is missing or unreadable.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/dates"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
	"github.com/tamimhossen6238-cell/amolpro/internal/neki"
)

// Tasbihs returns the six canonical built-in tasbihs. Their neki values are
// fixed by id in the neki package, not derived from the Arabic text.
func Tasbihs() []models.Tasbih {
	everyday := models.Schedule{Everyday: true}
	return []models.Tasbih{
		{ID: neki.BuiltinSubhanallah, Name: "SubhanAllah", ArabicText: "سُبْحَانَ اللَّهِ", Pronunciation: "Subhanallah", Translation: "Glory be to Allah", Schedule: everyday},
		{ID: neki.BuiltinAlhamdulillah, Name: "Alhamdulillah", ArabicText: "الْحَمْدُ لِلَّهِ", Pronunciation: "Alhamdulillah", Translation: "All praise is for Allah", Schedule: everyday},
		{ID: neki.BuiltinAllahuAkbar, Name: "Allahu Akbar", ArabicText: "اللَّهُ أَكْبَرُ", Pronunciation: "Allahu Akbar", Translation: "Allah is the greatest", Schedule: everyday},
		{ID: neki.BuiltinLaIlahaIllallah, Name: "La ilaha illallah", ArabicText: "لَا إِلَٰهَ إِلَّا اللَّهُ", Pronunciation: "La ilaha illallah", Translation: "There is no god but Allah", Schedule: everyday},
		{ID: neki.BuiltinAstaghfirullah, Name: "Astaghfirullah", ArabicText: "أَسْتَغْفِرُ اللَّهَ", Pronunciation: "Astaghfirullah", Translation: "I seek forgiveness from Allah", Schedule: everyday},
		{ID: neki.BuiltinDurood, Name: "Durood Sharif", ArabicText: "اللَّهُمَّ صَلِّ عَلَى مُحَمَّدٍ", Pronunciation: "Allahumma salli ala Muhammad", Translation: "O Allah, send blessings upon Muhammad", Schedule: everyday},
	}
}

// GeneralTasbih returns the singleton general tasbih. It lives outside the
// user-editable list and never earns neki.
func GeneralTasbih() models.Tasbih {
	return models.Tasbih{
		ID:       constants.GeneralTasbihID,
		Name:     "General Tasbih",
		Schedule: models.Schedule{Everyday: true},
	}
}

// Targets returns the default daily goals.
func Targets() []models.TargetAmol {
	return []models.TargetAmol{
		{ID: "target_fajr", Name: "Fajr on time", Description: "Pray Fajr at its earliest time", Neki: 500},
		{ID: "target_quran", Name: "Quran recitation", Description: "Recite at least one page of the Quran", Neki: 300},
		{ID: "target_charity", Name: "Daily charity", Description: "Give charity, however small", Neki: 400},
	}
}

// Stats returns a fresh stats blob anchored to the local day of now.
func Stats(now time.Time) models.Stats {
	return models.Stats{
		Level:          1,
		LastActiveDate: dates.DayKey(now),
	}
}

// InboxMessages returns the first-run welcome messages.
func InboxMessages(now time.Time) []models.InboxMessage {
	return []models.InboxMessage{
		{
			ID:        uuid.NewString(),
			Title:     "Welcome to Amolpro",
			Body:      "Assalamu alaikum! Count your tasbihs, complete your daily targets and keep a journal of good deeds. Every 100 repetitions in a day plants a tree in your garden.",
			CreatedAt: now,
			Type:      models.MessageTypeInfo,
		},
		{
			ID:        uuid.NewString(),
			Title:     "About neki values",
			Body:      "Neki values shown here are illustrative encouragements, not religious rulings. The reward of deeds rests with Allah alone.",
			CreatedAt: now,
			Type:      models.MessageTypeInfo,
		},
	}
}
