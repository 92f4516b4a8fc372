package entities

// ControllerBind holds the Cobra metadata a controller binds to.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}
