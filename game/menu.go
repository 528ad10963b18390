package game

import "github.com/beka-birhanu/maze-game/maze"

// Breadcrumb trail opacities for the three shade settings, as alpha values.
const (
	BreadcrumbLight  uint8 = 50
	BreadcrumbMedium uint8 = 110
	BreadcrumbDark   uint8 = 180
)

// ShadeNames lists the trail shade settings in cycling order.
var ShadeNames = []string{"Light", "Medium", "Dark"}

var shadeOpacities = []uint8{BreadcrumbLight, BreadcrumbMedium, BreadcrumbDark}

// Menu models the difficulty-selection screen: four difficulty rows followed
// by two settings rows (breadcrumb toggle, trail shade). It is pure selection
// state; whatever draws it and feeds it input lives outside this package.
type Menu struct {
	cursor             int
	breadcrumbsEnabled bool
	shadeIndex         int
}

// NewMenu returns a menu with the first difficulty selected, breadcrumbs
// enabled, and the medium trail shade.
func NewMenu() *Menu {
	return &Menu{
		breadcrumbsEnabled: true,
		shadeIndex:         1,
	}
}

// itemCount is the difficulty rows plus the breadcrumb and shade rows.
func (m *Menu) itemCount() int {
	return len(maze.Difficulties) + 2
}

// Up moves the cursor one row up, wrapping at the top.
func (m *Menu) Up() {
	m.cursor = (m.cursor - 1 + m.itemCount()) % m.itemCount()
}

// Down moves the cursor one row down, wrapping at the bottom.
func (m *Menu) Down() {
	m.cursor = (m.cursor + 1) % m.itemCount()
}

// Activate confirms the current row. On a difficulty row it reports that the
// game should start; on a settings row it toggles breadcrumbs or cycles the
// shade and reports false.
func (m *Menu) Activate() bool {
	switch {
	case m.cursor < len(maze.Difficulties):
		return true
	case m.cursor == len(maze.Difficulties):
		m.breadcrumbsEnabled = !m.breadcrumbsEnabled
	default:
		m.shadeIndex = (m.shadeIndex + 1) % len(ShadeNames)
	}
	return false
}

// Adjust handles a left (-1) or right (+1) press: it toggles or cycles the
// settings rows and does nothing on difficulty rows.
func (m *Menu) Adjust(delta int) {
	switch {
	case m.cursor < len(maze.Difficulties):
	case m.cursor == len(maze.Difficulties):
		m.breadcrumbsEnabled = !m.breadcrumbsEnabled
	default:
		n := len(ShadeNames)
		m.shadeIndex = (m.shadeIndex + delta%n + n) % n
	}
}

// SelectedDifficulty returns the difficulty under the cursor, clamped to the
// last difficulty row when the cursor sits on a settings row.
func (m *Menu) SelectedDifficulty() maze.Difficulty {
	index := m.cursor
	if index > len(maze.Difficulties)-1 {
		index = len(maze.Difficulties) - 1
	}
	return maze.Difficulties[index]
}

// BreadcrumbsEnabled reports whether the trail should be shown.
func (m *Menu) BreadcrumbsEnabled() bool {
	return m.breadcrumbsEnabled
}

// ShadeName returns the name of the selected trail shade.
func (m *Menu) ShadeName() string {
	return ShadeNames[m.shadeIndex]
}

// BreadcrumbOpacity returns the alpha value for the selected trail shade.
func (m *Menu) BreadcrumbOpacity() uint8 {
	return shadeOpacities[m.shadeIndex]
}
