package session

import (
	"context"
	"fmt"

	"meetRecorder/internal/browser"
	"meetRecorder/internal/logger"
)

// StepReport фиксирует, какие необязательные шаги входа реально сработали.
// Пропуск шага не ошибка: внешнее поведение остается "тихим".
type StepReport struct {
	DismissedDevicePrompt bool
	EnteredName           bool
	AskedToJoin           bool
}

// Navigator ведет страницу от загрузки до состояния "ожидает допуска".
// Линейная последовательность необязательных шагов: интерфейс конференции
// меняется от состояния аккаунта и фичефлагов, поэтому каждый шаг терпим
// к отсутствию своего элемента.
type Navigator struct {
	br          browser.Browser
	log         *logger.Zap
	displayName string
}

func NewNavigator(br browser.Browser, log *logger.Zap, displayName string) *Navigator {
	return &Navigator{
		br:          br,
		log:         log,
		displayName: displayName,
	}
}

// JoinSequence выполняет шаги входа по порядку. Ошибка возможна только от
// примитива взаимодействия: найденный элемент, по которому не прошло
// действие, фатален для задачи.
func (n *Navigator) JoinSequence(ctx context.Context) (StepReport, error) {
	var report StepReport

	// Шаг 1: подсказка "продолжить без микрофона и камеры" — может не
	// появиться, если разрешения уже выданы на уровне браузера
	if el := n.br.Find(ctx, browser.ByText("span", "Continue without microphone and camera")); el != nil {
		if err := n.br.ClickElement(ctx, el); err != nil {
			return report, fmt.Errorf("шаг 'продолжить без устройств': %w", err)
		}
		report.DismissedDevicePrompt = true
	} else {
		n.log.Debug("подсказка об устройствах не показана, шаг пропущен")
	}

	// Шаг 2: поле имени участника
	if el := n.br.Find(ctx, browser.BySelector("input[aria-label='Your name']")); el != nil {
		if err := n.br.TypeInto(ctx, el, n.displayName); err != nil {
			return report, fmt.Errorf("шаг 'ввод имени': %w", err)
		}
		report.EnteredName = true
	} else {
		n.log.Debug("поле имени не показано, шаг пропущен")
	}

	// Шаг 3: запрос на вход
	if el := n.br.Find(ctx, browser.ByText("span", "Ask to join")); el != nil {
		if err := n.br.ClickElement(ctx, el); err != nil {
			return report, fmt.Errorf("шаг 'запрос на вход': %w", err)
		}
		report.AskedToJoin = true
	} else {
		n.log.Debug("кнопка запроса на вход не показана, шаг пропущен")
	}

	return report, nil
}
