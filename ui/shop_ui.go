package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/snapshot"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ShopUI is the clickable upgrade panel shown while the shop is open.
// Clicks are queued as commands and handed to the engine on the next step.
type ShopUI struct {
	UI *ebitenui.UI

	// Widget references for updates
	walletLabel *widget.Label
	rowButtons  []*widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	pending []components.Command
}

// NewShopUI creates the panel with one button per upgrade
func NewShopUI() *ShopUI {
	sui := &ShopUI{}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *ShopUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   22,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   15,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (sui *ShopUI) buildUI() {
	// Transparent root so the frozen arena stays visible behind the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(14)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.PanelFill)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("UPGRADES", &sui.titleFace, &widget.LabelColor{
			Idle: cfg.NeonCyan,
		}),
	))

	sui.walletLabel = widget.NewLabel(
		widget.LabelOpts.Text(walletText(0), &sui.normalFace, &widget.LabelColor{
			Idle: cfg.NeonYellow,
		}),
	)
	panel.AddChild(sui.walletLabel)

	for i, upgrade := range cfg.Shop.Upgrades {
		idx := i // Capture for closure
		row := snapshot.ShopRow{Key: i + 1, Name: upgrade.Name, Cost: upgrade.Cost}
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(280, 28),
			),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(rowText(row), &sui.normalFace, &widget.ButtonTextColor{
				Idle:     cfg.White,
				Hover:    cfg.NeonCyan,
				Pressed:  cfg.NeonYellow,
				Disabled: cfg.Grey,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				sui.pending = append(sui.pending, components.Command{Kind: components.CmdBuy, Index: idx})
			}),
		)
		sui.rowButtons = append(sui.rowButtons, button)
		panel.AddChild(button)
	}

	closeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(280, 24),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Close (B)", &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   cfg.White,
			Pressed: cfg.Grey,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.pending = append(sui.pending, components.Command{Kind: components.CmdToggleShop})
		}),
	)
	panel.AddChild(closeButton)

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.ButtonPress),
		Disabled: image.NewNineSliceColor(cfg.ButtonOff),
	}
}

// Sync refreshes the wallet, prices and affordability from the frame
func (sui *ShopUI) Sync(shop *snapshot.Shop) {
	if shop == nil {
		return
	}
	sui.walletLabel.Label = walletText(shop.Wallet)
	for i, row := range shop.Rows {
		if i >= len(sui.rowButtons) {
			break
		}
		if textWidget := sui.rowButtons[i].Text(); textWidget != nil {
			textWidget.Label = rowText(row)
		}
		sui.rowButtons[i].GetWidget().Disabled = !row.Affordable
	}
}

// Update runs the widget logic
func (sui *ShopUI) Update() {
	sui.UI.Update()
}

func (sui *ShopUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}

// Drain returns and clears the commands queued by clicks
func (sui *ShopUI) Drain() []components.Command {
	cmds := sui.pending
	sui.pending = nil
	return cmds
}

func walletText(coins int) string {
	return fmt.Sprintf("Coins: %d", coins)
}

func rowText(row snapshot.ShopRow) string {
	return fmt.Sprintf("[%d] %s - %d", row.Key, row.Name, row.Cost)
}
