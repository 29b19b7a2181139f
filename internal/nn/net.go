package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/snaketune/snaketune/internal/activation"
	"gonum.org/v1/gonum/mat"
)

// Net is a multilayer feed-forward network.
//
// Each layer's output becomes the next layer's input:
//
//	h1 := layer0.Forward(input)
//	h2 := layer1.Forward(h1)
//	output := layer2.Forward(h2)
//
// Example:
//
//	net, err := nn.NewNet([]int{2, 2, 1}, activation.Sigmoid{}, rng)
//	for range 100000 {
//	    net.Backward(x, []float64{target}, 0.1)
//	}
//	y := net.Predict(x)
type Net struct {
	layers []*Layer
}

// NewNet creates a network from an ordered list of layer sizes.
//
// layerSizes[0] is the input dimensionality and the last value is the output
// dimensionality, so []int{2, 2, 1} builds two layers (2→2 and 2→1). Every
// layer uses act.
func NewNet(layerSizes []int, act activation.Function, rng *rand.Rand) (*Net, error) {
	if len(layerSizes) < 2 {
		return nil, fmt.Errorf("net: %w (got %d sizes)", ErrEmptyLayerSizes, len(layerSizes))
	}
	for i, size := range layerSizes {
		if size < 1 {
			return nil, fmt.Errorf("net: size %d: %w (got %d)", i, ErrInvalidLayerSize, size)
		}
	}

	rng = newRand(rng)
	layers := make([]*Layer, 0, len(layerSizes)-1)
	for i := 0; i < len(layerSizes)-1; i++ {
		layer, err := NewLayer(layerSizes[i], layerSizes[i+1], act, rng)
		if err != nil {
			return nil, fmt.Errorf("net: layer %d: %w", i, err)
		}
		layers = append(layers, layer)
	}
	return &Net{layers: layers}, nil
}

// NetFromLayers chains existing layers.
//
// Returns ErrLayerMismatch unless layers[i].OutFeatures() == layers[i+1].InFeatures().
func NetFromLayers(layers ...*Layer) (*Net, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("net: %w", ErrEmptyLayerSizes)
	}
	for i := 0; i < len(layers)-1; i++ {
		if layers[i].OutFeatures() != layers[i+1].InFeatures() {
			return nil, fmt.Errorf("net: %w: layer %d outputs %d, layer %d expects %d",
				ErrLayerMismatch, i, layers[i].OutFeatures(), i+1, layers[i+1].InFeatures())
		}
	}
	return &Net{layers: append([]*Layer(nil), layers...)}, nil
}

// Forward threads input through every layer and returns the final output.
func (n *Net) Forward(input []float64) []float64 {
	n.checkInput("Forward", input)

	var x mat.Vector = mat.NewVecDense(len(input), input)
	for _, layer := range n.layers {
		x = layer.Forward(x)
	}
	return mat.Col(nil, 0, x)
}

// Predict returns the first output of Forward.
func (n *Net) Predict(inputs []float64) float64 {
	return n.Forward(inputs)[0]
}

// Backward runs one online back-propagation step on a single example.
//
// A forward pass caches every layer's input and output, the output error
// expected − output is computed, and each layer from last to first applies
// its update and hands the propagated error to the layer before it.
//
// Returns the squared error of the prediction made before the update.
func (n *Net) Backward(input, expected []float64, lr float64) float64 {
	n.checkInput("Backward", input)
	if len(expected) != n.OutputDim() {
		panic(fmt.Sprintf("Net.Backward: expected target with %d values, got %d", n.OutputDim(), len(expected)))
	}

	// activations[i] is the input of layer i; activations[len] is the output.
	activations := make([]*mat.VecDense, len(n.layers)+1)
	activations[0] = mat.NewVecDense(len(input), append([]float64(nil), input...))
	for i, layer := range n.layers {
		activations[i+1] = layer.Forward(activations[i])
	}

	errVec := mat.NewVecDense(n.OutputDim(), append([]float64(nil), expected...))
	errVec.SubVec(errVec, activations[len(n.layers)])
	squared := mat.Dot(errVec, errVec)

	for i := len(n.layers) - 1; i >= 0; i-- {
		errVec = n.layers[i].Backprop(errVec, activations[i+1], activations[i], lr)
	}
	return squared
}

// InputDim returns the input dimensionality of the first layer.
func (n *Net) InputDim() int {
	return n.layers[0].InFeatures()
}

// OutputDim returns the output dimensionality of the last layer.
func (n *Net) OutputDim() int {
	return n.layers[len(n.layers)-1].OutFeatures()
}

// Len returns the number of layers.
func (n *Net) Len() int {
	return len(n.layers)
}

// Layers returns the layers in order. The slice is a copy; the layers are not.
func (n *Net) Layers() []*Layer {
	return append([]*Layer(nil), n.layers...)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (n *Net) Layer(index int) *Layer {
	if index < 0 || index >= len(n.layers) {
		panic("Net.Layer: index out of bounds")
	}
	return n.layers[index]
}

func (n *Net) checkInput(op string, input []float64) {
	if len(input) != n.InputDim() {
		panic(fmt.Sprintf("Net.%s: expected input with %d values, got %d", op, n.InputDim(), len(input)))
	}
}
