package ml

// Character network shape
const (
	charVocabSize    = 96  // Printable ASCII 0x20-0x7E plus one unknown slot
	charUnknownIndex = 95  // Reserved index for out-of-vocabulary bytes
	charMaxSequence  = 256 // Only the first N characters are read
	charEmbeddingDim = 8
	charHiddenDim    = 16
)

// CharNetWeights holds the fixed parameters of the character-pooled network
type CharNetWeights struct {
	Embedding  [charVocabSize][charEmbeddingDim]float64
	Hidden     [charEmbeddingDim][charHiddenDim]float64
	HiddenBias [charHiddenDim]float64
	Output     [charHiddenDim]float64
	OutputBias float64
}

// CharNet scores a URL by embedding its characters, mean-pooling the
// embeddings, and passing the pooled vector through one hidden layer.
// Inference is strictly deterministic.
type CharNet struct {
	weights *CharNetWeights
}

// NewCharNet creates a network over the given weights. Pass nil for the
// compiled-in default weights.
func NewCharNet(weights *CharNetWeights) *CharNet {
	if weights == nil {
		weights = &defaultCharNetWeights
	}
	return &CharNet{weights: weights}
}

// Predict returns a phishing probability in [0,1] for a URL.
// Empty input scores through the bias path only.
func (n *CharNet) Predict(rawURL string) float64 {
	pooled := n.pool(rawURL)

	var hidden [charHiddenDim]float64
	for j := 0; j < charHiddenDim; j++ {
		z := n.weights.HiddenBias[j]
		for i := 0; i < charEmbeddingDim; i++ {
			z += pooled[i] * n.weights.Hidden[i][j]
		}
		hidden[j] = relu(z)
	}

	z := n.weights.OutputBias
	for j := 0; j < charHiddenDim; j++ {
		z += hidden[j] * n.weights.Output[j]
	}
	return sigmoid(z)
}

// pool maps each character to its embedding and averages across the
// sequence. Out-of-vocabulary bytes share the reserved unknown index.
func (n *CharNet) pool(rawURL string) [charEmbeddingDim]float64 {
	var pooled [charEmbeddingDim]float64

	length := len(rawURL)
	if length > charMaxSequence {
		length = charMaxSequence
	}
	if length == 0 {
		return pooled
	}

	for i := 0; i < length; i++ {
		idx := charIndex(rawURL[i])
		for d := 0; d < charEmbeddingDim; d++ {
			pooled[d] += n.weights.Embedding[idx][d]
		}
	}
	for d := 0; d < charEmbeddingDim; d++ {
		pooled[d] /= float64(length)
	}
	return pooled
}

// charIndex maps a byte to its vocabulary index
func charIndex(c byte) int {
	if c >= 0x20 && c < 0x7F {
		return int(c - 0x20)
	}
	return charUnknownIndex
}
