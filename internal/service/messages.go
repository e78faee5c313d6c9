package service

// User-facing texts
const (
	msgGreeting         = "Привет! Давай учить английские слова!"
	msgChooseTemplate   = "Выбери перевод слова:\n🇷🇺 %s"
	msgNoWords          = "У вас пока нет слов для изучения. Добавьте слова кнопкой «Добавить слово»."
	msgCorrectTemplate  = "Отлично! ❤\n%s -> %s"
	msgWrongTemplate    = "Допущена ошибка!\nПопробуй ещё раз вспомнить слово 🇷🇺%s"
	msgEnterWord        = "Введите слово на английском:"
	msgEnterTranslation = "Теперь введите перевод:"
	msgWordAdded        = "Слово '%s' с переводом '%s' добавлено в ваш словарь."
	msgChooseDelete     = "Выберите слово для удаления:"
	msgNothingToDelete  = "У вас нет своих слов для удаления."
	msgWordDeleted      = "Слово '%s' удалено из вашего словаря."
	msgUnavailable      = "Сервис временно недоступен, попробуйте позже."
	msgInternalError    = "Произошла ошибка. Попробуйте позже."
)
