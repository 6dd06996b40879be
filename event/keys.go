package event // import "go-uiohook.org/event"

// Key identifies a physical key. The values are the native VC_* virtual key
// codes, which follow the set 1 scancode table with an 0xE0 prefix encoded in
// the high byte for extended keys.
type Key uint16

const (
	KeyUndefined Key = 0x0000

	KeyEscape    Key = 0x0001
	Key1         Key = 0x0002
	Key2         Key = 0x0003
	Key3         Key = 0x0004
	Key4         Key = 0x0005
	Key5         Key = 0x0006
	Key6         Key = 0x0007
	Key7         Key = 0x0008
	Key8         Key = 0x0009
	Key9         Key = 0x000A
	Key0         Key = 0x000B
	KeyMinus     Key = 0x000C
	KeyEquals    Key = 0x000D
	KeyBackspace Key = 0x000E
	KeyTab       Key = 0x000F

	KeyQ            Key = 0x0010
	KeyW            Key = 0x0011
	KeyE            Key = 0x0012
	KeyR            Key = 0x0013
	KeyT            Key = 0x0014
	KeyY            Key = 0x0015
	KeyU            Key = 0x0016
	KeyI            Key = 0x0017
	KeyO            Key = 0x0018
	KeyP            Key = 0x0019
	KeyOpenBracket  Key = 0x001A
	KeyCloseBracket Key = 0x001B
	KeyEnter        Key = 0x001C

	KeyLeftControl Key = 0x001D
	KeyA           Key = 0x001E
	KeyS           Key = 0x001F
	KeyD           Key = 0x0020
	KeyF           Key = 0x0021
	KeyG           Key = 0x0022
	KeyH           Key = 0x0023
	KeyJ           Key = 0x0024
	KeyK           Key = 0x0025
	KeyL           Key = 0x0026
	KeySemicolon   Key = 0x0027
	KeyQuote       Key = 0x0028
	KeyBackquote   Key = 0x0029

	KeyLeftShift Key = 0x002A
	KeyBackSlash Key = 0x002B
	KeyZ         Key = 0x002C
	KeyX         Key = 0x002D
	KeyC         Key = 0x002E
	KeyV         Key = 0x002F
	KeyB         Key = 0x0030
	KeyN         Key = 0x0031
	KeyM         Key = 0x0032
	KeyComma     Key = 0x0033
	KeyPeriod    Key = 0x0034
	KeySlash     Key = 0x0035

	KeyRightShift Key = 0x0036
	KeyLeftAlt    Key = 0x0038
	KeySpace      Key = 0x0039
	KeyCapsLock   Key = 0x003A

	KeyF1  Key = 0x003B
	KeyF2  Key = 0x003C
	KeyF3  Key = 0x003D
	KeyF4  Key = 0x003E
	KeyF5  Key = 0x003F
	KeyF6  Key = 0x0040
	KeyF7  Key = 0x0041
	KeyF8  Key = 0x0042
	KeyF9  Key = 0x0043
	KeyF10 Key = 0x0044
	KeyF11 Key = 0x0057
	KeyF12 Key = 0x0058

	KeyNumLock    Key = 0x0045
	KeyScrollLock Key = 0x0046

	KeyRightControl Key = 0x0E1D
	KeyRightAlt     Key = 0x0E38
	KeyHome         Key = 0x0E47
	KeyPageUp       Key = 0x0E49
	KeyEnd          Key = 0x0E4F
	KeyPageDown     Key = 0x0E51
	KeyInsert       Key = 0x0E52
	KeyDelete       Key = 0x0E53
	KeyLeftMeta     Key = 0x0E5B
	KeyRightMeta    Key = 0x0E5C
	KeyContextMenu  Key = 0x0E5D

	// The arrow keys carry the full 0xE0 prefix in the native table.
	KeyUp    Key = 0xE048
	KeyLeft  Key = 0xE04B
	KeyRight Key = 0xE04D
	KeyDown  Key = 0xE050
)

// MouseButton identifies a mouse button, using the native MOUSE_BUTTON*
// values.
type MouseButton uint16

const (
	NoButton MouseButton = iota
	LeftButton
	RightButton
	MiddleButton
	ExtraButton1
	ExtraButton2
)

// ScrollKind distinguishes the platform's scroll granularity modes.
type ScrollKind uint8

const (
	UnitScroll ScrollKind = iota + 1
	BlockScroll
)

// ScrollDirection is the axis a wheel event scrolls along.
type ScrollDirection uint8

const (
	VerticalScroll ScrollDirection = iota + 3
	HorizontalScroll
)
