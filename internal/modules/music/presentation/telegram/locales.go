package telegram

import "github.com/aglarus/tunegram/internal/modules/music/domain"

// devURL is the footer link attached to every result page.
const devURL = "https://t.me/aglarus"

// Locale holds the user-facing strings for one display language.
// Searching and Found carry phrase variants picked at random per message.
type Locale struct {
	Start            string
	LangSelect       string
	Searching        []string
	Found            []string
	NotFound         string
	SearchError      string
	Prev             string
	Next             string
	Expired          string
	Recognizing      string
	NotRecognized    string
	Recognized       string // fmt: artist, title
	RecognitionError string
	Sending          string // fmt: title
	DownloadError    string
	TrackError       string
	Footer           string
	Dev              string
}

var locales = map[domain.Language]*Locale{
	domain.LanguageRussian: {
		Start:            "🎸 *Привет! Я твой личный музыкальный гуру.*\n\n1️⃣ *Поиск*: Просто напиши название или автора.\n2️⃣ *Распознавание*: Скинь аудио или голосовое — и я узнаю этот хит!\n\n📩 Попробуй: 'Лепс зараза'",
		LangSelect:       "Выбери язык / Tilni tanlang / Select language / Dil seçin:",
		Searching:        []string{"🎸 Настраиваю гитару...", "🎼 Ищу вдохновение в нотах...", "🎧 Прослушиваю мировые хиты..."},
		Found:            []string{"✨ Эврика! Вот что удалось найти:", "🎵 Музыкальная находка специально для тебя:", "🔥 Это звучит круто! Выбирай:"},
		NotFound:         "😢 Увы, тишина... Ничего не найдено.\nПопробуй другой запрос!",
		SearchError:      "😵 Ой, струна лопнула! (Ошибка поиска)",
		Prev:             "◀️ Назад",
		Next:             "▶️ Вперёд",
		Expired:          "🕰 Время вышло! Начни новый поиск.",
		Recognizing:      "🎧 *Прислушиваюсь к ритму...*",
		NotRecognized:    "🤷‍♂️ Не узнаю этот мотив... Может, споешь погромче?",
		Recognized:       "🔥 *О, это же %s — %s!* \nИщу лучшую запись для тебя...",
		RecognitionError: "😵 Не удалось распознать. Кажется, кто-то фальшивит!",
		Sending:          "🚀 *Летит к тебе:* %s...",
		DownloadError:    "❌ Загрузка сорвалась. Попробуй еще раз.",
		TrackError:       "😿 Прости, не удалось достать этот трек.",
		Footer:           "\n\n⚡️ *Бот разработан Aglarus*",
		Dev:              "💎 Разработка: Aglarus",
	},
	domain.LanguageUzbek: {
		Start:            "🎸 *Salom! Men sizning shaxsiy musiqa gurusingizman.*\n\n1️⃣ *Qidiruv*: Shunchaki nomini yoki muallifini yozing.\n2️⃣ *Tanish*: Audio yoki ovozli xabar yuboring — va men ushbu xitni taniyman!\n\n📩 Sinab ko'ring: 'Sherali Jo'rayev'",
		LangSelect:       "Tilni tanlang:",
		Searching:        []string{"🎸 Gitarani sozlayapman...", "🎼 Notalardan ilhom qidiryapman...", "🎧 Dunyo xitlarini tinglayapman..."},
		Found:            []string{"✨ Evrika! Mana nimalar topildi:", "🎵 Maxsus siz uchun musiqiy topilma:", "🔥 Bu ajoyib eshitiladi! Tanlang:"},
		NotFound:         "😢 Afsus, jimjitlik... Hech narsa topilmadi.\nBoshqa so'rovni sinab ko'ring!",
		SearchError:      "😵 Voy, tor uzilib ketdi! (Qidiruv xatosi)",
		Prev:             "◀️ Orqaga",
		Next:             "▶️ Oldinga",
		Expired:          "🕰 Vaqt tugadi! Yangi qidiruvni boshlang.",
		Recognizing:      "🎧 *Ritmni tinglayapman...*",
		NotRecognized:    "🤷‍♂️ Bu ohangni tani olmayapman... Balki balandroq kuylarsiz?",
		Recognized:       "🔥 *O, bu %s — %s!* \nSiz uchun eng yaxshi yozuvni qidiryapman...",
		RecognitionError: "😵 Taniy olmadim. Kimdir noto'g'ri kuylayotganga o'xshaydi!",
		Sending:          "🚀 *Sizga uchmoqda:* %s...",
		DownloadError:    "❌ Yuklab olish amalga oshmadi. Qayta urinib ko'ring.",
		TrackError:       "😿 Kechirasiz, bu trekni olishning iloji bo'lmadi.",
		Footer:           "\n\n⚡️ *Bot Aglarus tomonidan ishlab chiqilgan*",
		Dev:              "💎 Ishlab chiquvchi: Aglarus",
	},
	domain.LanguageEnglish: {
		Start:            "🎸 *Hello! I'm your personal music guru.*\n\n1️⃣ *Search*: Just type the name or artist.\n2️⃣ *Recognition*: Send audio or voice — and I'll recognize this hit!\n\n📩 Try: 'Queen Bohemian Rhapsody'",
		LangSelect:       "Select language:",
		Searching:        []string{"🎸 Tuning the guitar...", "🎼 Looking for inspiration in notes...", "🎧 Listening to world hits..."},
		Found:            []string{"✨ Eureka! Here's what I found:", "🎵 A musical find just for you:", "🔥 This sounds cool! Choose:"},
		NotFound:         "😢 Alas, silence... Nothing found.\nTry another query!",
		SearchError:      "😵 Oops, a string snapped! (Search error)",
		Prev:             "◀️ Back",
		Next:             "▶️ Next",
		Expired:          "🕰 Time's up! Start a new search.",
		Recognizing:      "🎧 *Listening to the rhythm...*",
		NotRecognized:    "🤷‍♂️ I don't recognize this tune... Maybe sing louder?",
		Recognized:       "🔥 *Oh, it's %s — %s!* \nLooking for the best recording for you...",
		RecognitionError: "😵 Could not recognize. Someone seems to be out of tune!",
		Sending:          "🚀 *Flying to you:* %s...",
		DownloadError:    "❌ Download failed. Try again.",
		TrackError:       "😿 Sorry, could not get this track.",
		Footer:           "\n\n⚡️ *Bot developed by Aglarus*",
		Dev:              "💎 Developer: Aglarus",
	},
	domain.LanguageAzeri: {
		Start:            "🎸 *Salam! Mən sənin şəxsi musiqi qurun bələdçisiyəm.*\n\n1️⃣ *Axtarış*: Sadəcə adı və ya müəllifi yaz.\n2️⃣ *Tanıma*: Audio və ya səsli mesaj göndər — mən bu hiti tanıyacam!\n\n📩 Sına: 'Rəşid Behbudov'",
		LangSelect:       "Dil seçin:",
		Searching:        []string{"🎸 Gitaranı kökləyirəm...", "🎼 Notlarda ilham axtarıram...", "🎧 Dünya hitlərini dinləyirəm..."},
		Found:            []string{"✨ Evrika! Budur tapılanlar:", "🎵 Sənin üçün xüsusi musiqi tapıntısı:", "🔥 Bu əla səslənir! Seç:"},
		NotFound:         "😢 Təəssüf ki, sükutdur... Heç nə tapılmadı.\nBaşqa sorğu yoxla!",
		SearchError:      "😵 Oy, sim qırıldı! (Axtarış xətası)",
		Prev:             "◀️ Geri",
		Next:             "▶️ İrəli",
		Expired:          "🕰 Vaxt bitdi! Yeni axtarışa başla.",
		Recognizing:      "🎧 *Ritmi dinləyirəm...*",
		NotRecognized:    "🤷‍♂️ Bu melodiyanı tanımıram... Bəlkə bir az bərkdən oxuyasan?",
		Recognized:       "🔥 *O, bu axı %s — %s!* \nSənin üçün ən yaxşı yazını axtarıram...",
		RecognitionError: "😵 Tanımaq mümkün olmadı. Deyəsən kimsə yalan oxuyur!",
		Sending:          "🚀 *Sənə tərəf uçur:* %s...",
		DownloadError:    "❌ Yükləmə uğursuz oldu. Yenidən cəhd et.",
		TrackError:       "😿 Bağışlayın, bu treki əldə etmək mümkün olmadı.",
		Footer:           "\n\n⚡️ *Hazırladı: Aglarus*",
		Dev:              "💎 Hazırladı: Aglarus",
	},
}

// LocaleFor returns the strings for lang, falling back to the default language.
func LocaleFor(lang domain.Language) *Locale {
	if loc, ok := locales[lang]; ok {
		return loc
	}
	return locales[domain.DefaultLanguage]
}
