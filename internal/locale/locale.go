// Package locale holds the labels the web pages, CSV export and CLI show to
// users, in English and Russian.
package locale

import "time"

// Labels is the set of user-facing strings for one language
type Labels struct {
	Code      string
	Yes       string
	No        string
	CSVHeader []string
	Months    [12]string

	TaskAdded     string
	TaskUpdated   string
	TaskDeleted   string
	DoneDeleted   string
	NoTasks       string
	ServerError   string
	StartDateSide string
	EndDateSide   string

	// The following are fmt formats
	WrongDate     string // %s date
	WrongBound    string // %s side, %s date
	DuplicateTask string // %d existing id
	TaskNotFound  string // %s task

	PastDeadline   string
	NothingFound   string
	EmptyList      string
	DeleteNeedsKey string
	NothingToSave  string
}

var labels = map[string]Labels{
	"en": {
		Code:      "en",
		Yes:       "yes",
		No:        "no",
		CSVHeader: []string{"id", "name", "deadline", "comment", "done"},
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		TaskAdded:     "Task added",
		TaskUpdated:   "Task updated",
		TaskDeleted:   "Task deleted",
		DoneDeleted:   "Completed tasks deleted",
		NoTasks:       "No tasks",
		ServerError:   "Application error, please try again later",
		StartDateSide: "start date",
		EndDateSide:   "end date",

		WrongDate:     "Wrong date: %s",
		WrongBound:    "Wrong search %s: %s",
		DuplicateTask: "A task with this name and deadline already exists, id %d",
		TaskNotFound:  "Task %s not found",

		PastDeadline:   "The deadline is in the past, pick another date",
		NothingFound:   "No tasks match these filters",
		EmptyList:      "The task list is empty",
		DeleteNeedsKey: "To delete a task enter its name and deadline",
		NothingToSave:  "Nothing to update",
	},
	"ru": {
		Code:      "ru",
		Yes:       "да",
		No:        "нет",
		CSVHeader: []string{"id", "название", "срок", "комментарий", "выполнено"},
		Months: [12]string{
			"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
			"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
		},
		TaskAdded:     "Задача добавлена",
		TaskUpdated:   "Задача обновлена",
		TaskDeleted:   "Задача удалена",
		DoneDeleted:   "Выполненные задачи удалены",
		NoTasks:       "Задач нет",
		ServerError:   "Ошибка приложения, попробуйте позже",
		StartDateSide: "начальная дата",
		EndDateSide:   "конечная дата",

		WrongDate:     "Вы ввели неправильное время: %s",
		WrongBound:    "Неправильная %s поиска: %s",
		DuplicateTask: "Задача с таким названием и сроком выполнения уже существует id %d",
		TaskNotFound:  "Задача %s не найдена",

		PastDeadline:   "Введите другое значение для времени выполнения задачи",
		NothingFound:   "Задачи по данным фильтрам не найдены",
		EmptyList:      "Список задач пуст",
		DeleteNeedsKey: "Чтобы удалить задачу введите её название и срок выполнения",
		NothingToSave:  "Нечего обновлять",
	},
}

// Default is used for unknown codes
const Default = "en"

// IsSupported reports whether code names a known language
func IsSupported(code string) bool {
	_, ok := labels[code]
	return ok
}

// Get returns the labels for code, falling back to English
func Get(code string) Labels {
	if l, ok := labels[code]; ok {
		return l
	}
	return labels[Default]
}

// YesNo renders a done flag
func (l Labels) YesNo(b bool) string {
	if b {
		return l.Yes
	}
	return l.No
}

// MonthName returns the localized name of m
func (l Labels) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return l.Months[m-1]
}
