package loadgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tier labels a question's difficulty. Harder tiers produce longer
// completions and therefore longer response times.
type Tier string

const (
	TierSimple  Tier = "simple"
	TierMedium  Tier = "medium"
	TierComplex Tier = "complex"
)

// Question is a single canned prompt in the pool.
type Question struct {
	Text string
	Tier Tier
}

var simpleQuestions = []string{
	"Hello, how are you?",
	"What is AI?",
	"Tell me a joke.",
	"What is 2+2?",
	"Define machine learning.",
	"What is Python?",
	"How does internet work?",
	"What is climate change?",
	"Explain blockchain.",
	"What is quantum computing?",
}

var mediumQuestions = []string{
	"Explain the difference between artificial intelligence and machine learning.",
	"How does natural language processing work in modern AI systems?",
	"What are the main challenges in developing autonomous vehicles?",
	"Describe the process of training a neural network from scratch.",
	"How do recommendation systems work on platforms like Netflix and Amazon?",
	"What are the ethical implications of using AI in healthcare diagnostics?",
	"Explain the concept of transfer learning in deep learning models.",
	"How does computer vision technology enable facial recognition systems?",
	"What are the advantages and disadvantages of cloud computing for businesses?",
	"Describe the role of data preprocessing in machine learning workflows.",
}

var complexQuestions = []string{
	"Provide a comprehensive analysis of how transformer architectures revolutionized natural language processing, including their attention mechanism, scalability benefits, and impact on models like GPT and BERT.",
	"Explain in detail the technical challenges and solutions involved in building a distributed microservices architecture for a high-traffic e-commerce platform, including database sharding, load balancing, and fault tolerance.",
	"Discuss the complete software development lifecycle for a machine learning project, from data collection and cleaning through model deployment and monitoring, including best practices for MLOps.",
	"Analyze the environmental impact of large-scale data centers and cryptocurrency mining, and propose sustainable solutions that balance technological advancement with environmental responsibility.",
	"Describe the technical implementation details of implementing a real-time recommendation engine that can handle millions of users simultaneously while maintaining sub-second response times and personalized accuracy.",
	"Explain the security challenges and solutions in implementing a zero-trust network architecture for a multinational corporation with hybrid cloud infrastructure and remote workforce.",
	"Provide a detailed technical comparison between different containerization technologies (Docker, Kubernetes, etc.) and their optimal use cases in various enterprise scenarios.",
	"Analyze the technical and business implications of transitioning from a monolithic application architecture to a serverless, event-driven architecture using cloud-native technologies.",
	"Discuss the implementation challenges of building a scalable, real-time chat application that supports millions of concurrent users, including WebSocket management, message routing, and data consistency.",
	"Explain the complete process of designing and implementing a computer vision system for autonomous drone navigation, including sensor fusion, path planning, obstacle avoidance, and real-time decision making.",
}

// DefaultQuestions returns the built-in question pool, ordered
// simple, medium, complex.
func DefaultQuestions() []Question {
	var pool []Question
	for _, q := range simpleQuestions {
		pool = append(pool, Question{Text: q, Tier: TierSimple})
	}
	for _, q := range mediumQuestions {
		pool = append(pool, Question{Text: q, Tier: TierMedium})
	}
	for _, q := range complexQuestions {
		pool = append(pool, Question{Text: q, Tier: TierComplex})
	}
	return pool
}

// questionFile is the YAML shape of an external question pool.
type questionFile struct {
	Simple  []string `yaml:"simple"`
	Medium  []string `yaml:"medium"`
	Complex []string `yaml:"complex"`
}

// LoadQuestions loads a question pool from a YAML file with tiered
// lists. At least one question is required.
func LoadQuestions(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var qf questionFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parse questions file: %w", err)
	}

	var pool []Question
	for _, q := range qf.Simple {
		pool = append(pool, Question{Text: q, Tier: TierSimple})
	}
	for _, q := range qf.Medium {
		pool = append(pool, Question{Text: q, Tier: TierMedium})
	}
	for _, q := range qf.Complex {
		pool = append(pool, Question{Text: q, Tier: TierComplex})
	}

	if len(pool) == 0 {
		return nil, fmt.Errorf("questions file %s contains no questions", path)
	}
	return pool, nil
}
