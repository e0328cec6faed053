package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const menuText = `
1. Страница "Главная"
2. Простой поиск по описанию или категории.
3. Отчет. Траты по категории.
`

// HomepageBuilder and Reports are the operations the menu dispatches to.
type (
	HomepageBuilder interface {
		Build(ctx context.Context, dateStr string) (string, error)
	}
	Reports interface {
		Search(ctx context.Context, keyword string) (string, error)
		SpendingByCategory(ctx context.Context, category, dateStr string) (string, error)
	}
)

// Menu is the interactive loop over stdin/stdout. An operation failure
// is printed and the menu continues; end of input ends the loop.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	homepage HomepageBuilder
	reports  Reports
}

func NewMenu(in io.Reader, out io.Writer, homepage HomepageBuilder, reports Reports) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		homepage: homepage,
		reports:  reports,
	}
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)
		choice, ok := m.readLine()
		if !ok {
			return m.in.Err()
		}
		switch choice {
		case "1":
			fmt.Fprintln(m.out, `Выбрана Страница "Главная".`)
			date, ok := m.prompt("Введите дату (пример: 10.10.2021): ")
			if !ok {
				return m.in.Err()
			}
			m.show(m.homepage.Build(ctx, date))
		case "2":
			fmt.Fprintln(m.out, "Выбран Простой поиск по описанию или категории.")
			keyword, ok := m.prompt("Введите ключевое слово для поиска: ")
			if !ok {
				return m.in.Err()
			}
			m.show(m.reports.Search(ctx, keyword))
		case "3":
			fmt.Fprintln(m.out, "Выбран Отчет. Траты по категориям.")
			category, ok := m.prompt("Введите категорию: ")
			if !ok {
				return m.in.Err()
			}
			date, ok := m.prompt("Укажите дату: ")
			if !ok {
				return m.in.Err()
			}
			m.show(m.reports.SpendingByCategory(ctx, category, date))
		default:
			fmt.Fprintln(m.out, "Некорректный ввод. Пожалуйста, выберите действие от 1 до 3.")
		}
	}
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

func (m *Menu) show(text string, err error) {
	if err != nil {
		fmt.Fprintf(m.out, "Ошибка: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, text)
}
