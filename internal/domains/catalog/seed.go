package catalog

import "strconv"

// Demonstration dataset shipped with the application. Used by the local
// store and as the fallback when the backend is unreachable.

var sampleGenres = []string{
	"Роман", "Эссе", "Поэзия", "Детектив", "Приключения", "Руководство",
	"История", "Наука", "Фантастика", "Дневник", "Антология", "Юмор",
	"Мистика", "Путеводитель", "Обзор", "Детская", "Справочник",
	"Заметки", "Биография", "Драма",
}

// Seed returns a fresh copy of the embedded demonstration catalog.
func Seed() []Book {
	out := make([]Book, len(seedBooks))
	copy(out, seedBooks)
	return out
}

// SampleBook builds a deterministic generated book for the given id.
func SampleBook(id int) Book {
	return Book{
		ID:     id,
		Title:  "Новая книга " + strconv.Itoa(id),
		Author: "Автор " + strconv.Itoa(id),
		Year:   2000 + id%23,
		Color:  "#FFECB8",
		Genre:  sampleGenres[id%len(sampleGenres)],
	}
}


var seedBooks = []Book{
	{ID: 1, Title: "Мудрость леса", Author: "А. Петров", Year: 1998, Color: "#FFD9B3", Genre: "Эссе", Description: "Нежные размышления о природе и человеческой душе."},
	{ID: 2, Title: "Тайна старого манускрипта", Author: "И. Волков", Year: 2003, Color: "#FFECB8", Genre: "Детектив", Description: "Захватывающий детектив вокруг древнего текста и тайн библиотеки."},
	{ID: 3, Title: "Путешествие в длину страниц", Author: "С. Лебедев", Year: 2010, Color: "#FFE1C6", Genre: "Приключения", Description: "Приключенческий роман о странствиях по миру книг и памяти."},
	{ID: 4, Title: "Книги и люди", Author: "Н. Смирнова", Year: 1987, Color: "#FFD2A6", Genre: "Эссе", Description: "Эссе о роли литературы в жизни разных поколений."},
	{ID: 5, Title: "Алхимия слов", Author: "Д. Козлов", Year: 2015, Color: "#FFC79A", Genre: "Фантастика", Description: "Фантастическая история о силе языка и изменении реальности."},
	{ID: 6, Title: "Читательский дневник", Author: "О. Иванова", Year: 2001, Color: "#FFD9B3", Genre: "Дневник", Description: "Личные заметки одного преданного читателя."},
	{ID: 7, Title: "Антология редких страниц", Author: "Е. Морозов", Year: 1995, Color: "#FFE7C9", Genre: "Антология", Description: "Сборник редких и забытых текстов."},
	{ID: 8, Title: "Мастерская редактуры", Author: "Л. Крылов", Year: 2020, Color: "#FFDAB5", Genre: "Руководство", Description: "Практическое руководство по искусству редактирования текста."},
	{ID: 9, Title: "Библиотечные заметки", Author: "В. Никитин", Year: 1992, Color: "#FFE2CA", Genre: "Заметки", Description: "Короткие наблюдения из повседневной жизни библиотеки."},
	{ID: 10, Title: "Сборник затей", Author: "М. Громов", Year: 1980, Color: "#FFCFA8", Genre: "Юмор", Description: "Юмористические зарисовки и рассказы для настроения."},
	{ID: 11, Title: "Тихие страницы", Author: "А. Беляев", Year: 2008, Color: "#FFD9B3", Genre: "Роман", Description: "Тонкий роман о внутренних переживаниях и отношениях."},
	{ID: 12, Title: "Перо и чернила", Author: "И. Соколов", Year: 1999, Color: "#FFEFCF", Genre: "Поэзия", Description: "Сборник лирических стихотворений о мелочах жизни."},
	{ID: 13, Title: "Хранители томов", Author: "С. Миронов", Year: 2012, Color: "#FFD7A8", Genre: "История", Description: "Исторические очерки о людях, хранящих книги."},
	{ID: 14, Title: "Записки библиотекаря", Author: "Н. Рябова", Year: 1994, Color: "#FFDEA6", Genre: "Дневник", Description: "Личные заметки и случаи из работы библиотекаря."},
	{ID: 15, Title: "Карта чтений", Author: "Д. Орлов", Year: 1985, Color: "#FFD9B3", Genre: "Путеводитель", Description: "Путеводитель по важным книгам и чтению."},
	{ID: 16, Title: "Листая вечность", Author: "О. Филиппов", Year: 2006, Color: "#FFF0D9", Genre: "Роман", Description: "Роман о времени, памяти и книжных свидетельствах."},
	{ID: 17, Title: "Портрет автора", Author: "Е. Соловьёв", Year: 2018, Color: "#FFD2B3", Genre: "Биография", Description: "Биографический очерк о жизни и творчестве писателя."},
	{ID: 18, Title: "Серые страницы", Author: "Л. Павлова", Year: 1991, Color: "#FFE9D2", Genre: "Драма", Description: "Драматическая история о выборе и последствиях."},
	{ID: 19, Title: "Каталог мыслей", Author: "В. Романов", Year: 2000, Color: "#FFCFA8", Genre: "Эссе", Description: "Краткие философские заметки и размышления."},
	{ID: 20, Title: "Страницы времени", Author: "М. Васильев", Year: 1978, Color: "#FFD9B3", Genre: "История", Description: "Хроники и заметки о прошлом и его следах."},
	{ID: 21, Title: "Сон о книге", Author: "А. Ефремов", Year: 2011, Color: "#FFE1BE", Genre: "Фантастика", Description: "Мягкая фантастика о мечтах и книжных мирах."},
	{ID: 22, Title: "Забытые тома", Author: "И. Крылова", Year: 1996, Color: "#FFDAB5", Genre: "Архив", Description: "Исследование утраченных и забытых изданий."},
	{ID: 23, Title: "Хроники читателя", Author: "С. Зайцев", Year: 2004, Color: "#FFF2DF", Genre: "Дневник", Description: "Записи и мысли постоянного читателя."},
	{ID: 24, Title: "Слово и сюжет", Author: "Н. Белова", Year: 2017, Color: "#FFD7A8", Genre: "Роман", Description: "Современный роман о жизни через призму слова."},
	{ID: 25, Title: "Нити книг", Author: "Д. Мельников", Year: 1989, Color: "#FFE7C9", Genre: "Антология", Description: "Антология связных сюжетов и рассказов."},
	{ID: 26, Title: "Книжный классификатор", Author: "О. Литвин", Year: 1993, Color: "#FFD9B3", Genre: "Справочник", Description: "Полезный справочник по систематике книг."},
	{ID: 27, Title: "Чтение в сумерках", Author: "Е. Громова", Year: 2009, Color: "#FFECD0", Genre: "Мистика", Description: "Мистическая повесть о ночных открытиях и загадках."},
	{ID: 28, Title: "Руководство по сохранению", Author: "Л. Новик", Year: 2002, Color: "#FFCFA8", Genre: "Руководство", Description: "Практические советы по сохранению бумажных носителей."},
	{ID: 29, Title: "Литературные маршруты", Author: "В. Денисов", Year: 2013, Color: "#FFD9B3", Genre: "Путеводитель", Description: "Путеводитель по местам, связанным с литературой."},
	{ID: 30, Title: "Сборник заметок", Author: "М. Орехова", Year: 1997, Color: "#FFE2CA", Genre: "Заметки", Description: "Разнообразные заметки на литературные темы."},
	{ID: 31, Title: "Письма из читальни", Author: "А. Горбачёв", Year: 2005, Color: "#FFDAB5", Genre: "Эссе", Description: "Сборник писем и размышлений о чтении."},
	{ID: 32, Title: "Архив воспоминаний", Author: "И. Ковалёв", Year: 1983, Color: "#FFD9B3", Genre: "Биография", Description: "Воспоминания и документы из жизни автора."},
	{ID: 33, Title: "Шелест страниц", Author: "С. Логинов", Year: 2016, Color: "#FFF0D9", Genre: "Поэзия", Description: "Поэтические зарисовки о небольших радостях."},
	{ID: 34, Title: "Вечная полка", Author: "Н. Сергеева", Year: 1990, Color: "#FFE7C9", Genre: "Антология", Description: "Сборник вечных текстов для долгого чтения."},
	{ID: 35, Title: "Листки истории", Author: "Д. Чернов", Year: 1975, Color: "#FFC79A", Genre: "История", Description: "Исторические очерки и документы эпохи."},
	{ID: 36, Title: "Голоса томов", Author: "О. Рожков", Year: 2014, Color: "#FFD9B3", Genre: "Эссе", Description: "Эссе о значении книг и их голосах."},
	{ID: 37, Title: "Привратник книг", Author: "Е. Федорова", Year: 1988, Color: "#FFECD0", Genre: "Фантастика", Description: "Фантастическая повесть о хранителях знаний."},
	{ID: 38, Title: "Схема хранения", Author: "Л. Мартынов", Year: 2007, Color: "#FFD2A6", Genre: "Справочник", Description: "Методические рекомендации по организации хранения."},
	{ID: 39, Title: "Мозаика сюжетов", Author: "В. Шишков", Year: 1995, Color: "#FFD9B3", Genre: "Роман", Description: "Роман, составленный из переплетающихся историй."},
	{ID: 40, Title: "Том за томом", Author: "М. Киселёв", Year: 2019, Color: "#FFF6E6", Genre: "Антология", Description: "Современная антология небольших произведений."},
	{ID: 41, Title: "Книжный порядок", Author: "А. Титаренко", Year: 1984, Color: "#FFE7C9", Genre: "Справочник", Description: "Практическое руководство по систематизации коллекций."},
	{ID: 42, Title: "Сборник фактов", Author: "И. Лебедева", Year: 2003, Color: "#FFDAB5", Genre: "Наука", Description: "Набор фактов и наблюдений в популярном виде."},
	{ID: 43, Title: "Палитра жанров", Author: "С. Чернышёв", Year: 2010, Color: "#FFD9B3", Genre: "Роман", Description: "Роман, играющий с разнообразием литературных жанров."},
	{ID: 44, Title: "Томик подборок", Author: "Н. Алексеева", Year: 1992, Color: "#FFE2CA", Genre: "Антология", Description: "Подборка заметных и запоминающихся текстов."},
	{ID: 45, Title: "Наследие страниц", Author: "Д. Беляева", Year: 2001, Color: "#FFCFA8", Genre: "Эссе", Description: "Размышления о культурном наследии книг."},
	{ID: 46, Title: "Фолиант: заметки", Author: "О. Николаев", Year: 2021, Color: "#FFD9B3", Genre: "Заметки", Description: "Современные заметки и короткие зарисовки."},
	{ID: 47, Title: "Маркер читателя", Author: "Е. Макаров", Year: 1999, Color: "#FFF0D9", Genre: "Руководство", Description: "Практические советы для активных читателей."},
	{ID: 48, Title: "Книжный обзор", Author: "Л. Сидоров", Year: 1986, Color: "#FFD2B3", Genre: "Обзор", Description: "Обзоры и рецензии на интересные издания."},
	{ID: 49, Title: "Секреты каталогизации", Author: "В. Кузнецов", Year: 2000, Color: "#FFE9D2", Genre: "Руководство", Description: "Инструкция по тонкостям каталогизации библиотечных фондов."},
	{ID: 50, Title: "Маленькая библиотека", Author: "М. Полякова", Year: 1979, Color: "#FFD9B3", Genre: "Детская", Description: "Тёплые детские истории и сказки."},
	{ID: 51, Title: "Страницы вдохновения", Author: "А. Лазарев", Year: 2022, Color: "#FFF6E6", Genre: "Поэзия", Description: "Свежая поэзия для вдохновения и размышлений."},
	{ID: 52, Title: "Путеводитель по томам", Author: "И. Ромашова", Year: 1982, Color: "#FFDAB5", Genre: "Путеводитель", Description: "Краткий гид по коллекциям и классике литературы."},
}
