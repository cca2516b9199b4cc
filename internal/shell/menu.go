package shell

import (
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
)

// ChangeServerItem is the ID of the "Change Server" menu item.
const ChangeServerItem = "change_url"

// MenuItem is a clickable entry of a submenu.
type MenuItem struct {
	ID          string
	Label       string
	Accelerator *keys.Accelerator
}

// Submenu groups items under a top-level label.
type Submenu struct {
	Label string
	Items []MenuItem
}

// MenuModel describes the application menu bar. The native app submenu
// (about, hide, hide others, show all, quit) always comes first.
type MenuModel struct {
	Submenus []Submenu
}

// DefaultMenu is the shell's static menu.
func DefaultMenu() MenuModel {
	return MenuModel{
		Submenus: []Submenu{
			{
				Label: "Settings",
				Items: []MenuItem{
					{
						ID:          ChangeServerItem,
						Label:       "Change Server",
						Accelerator: keys.Combo("c", keys.CmdOrCtrlKey, keys.ShiftKey),
					},
				},
			},
		},
	}
}

// BuildMenu renders model as a Wails menu. Clicks are reported to onClick
// with the item's ID.
func BuildMenu(model MenuModel, onClick func(id string)) *menu.Menu {
	root := menu.NewMenu()
	root.Append(menu.AppMenu())

	for _, sub := range model.Submenus {
		m := root.AddSubmenu(sub.Label)
		for _, item := range sub.Items {
			id := item.ID
			m.AddText(item.Label, item.Accelerator, func(_ *menu.CallbackData) {
				onClick(id)
			})
		}
	}
	return root
}
