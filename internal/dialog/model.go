package dialog

type State string

const (
	StateIdle State = "idle"

	// Въезд (gate-in)
	StateGateInLoad      State = "gi:load"      // выбор FCL/LCL
	StateGateInContainer State = "gi:container" // сигла + серийный номер
	StateGateInNote      State = "gi:note"      // номер ноты приёма
	StateGateInField     State = "gi:field"     // дозаполнение полей по очереди
	StateGateInDriver    State = "gi:driver"    // документ водителя
	StateGateInTransport State = "gi:transport" // новые водители: имя, компания, номер
	StateGateInConfirm   State = "gi:confirm"   // сводка, позиция, подтверждение

	// Выезд (gate-out)
	StateGateOutDriver    State = "go:driver"
	StateGateOutTransport State = "go:transport"
	StateGateOutConfirm   State = "go:confirm"
)

type Payload map[string]any

type Item struct {
	ChatID  int64   `json:"chatId"`
	State   State   `json:"state"`
	Payload Payload `json:"payload"`
}
