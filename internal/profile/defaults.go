package profile

var (
	heroSubtitle = "AI Engineer crafting intelligent products with 4 years of industry experience."

	auroraDescription   = "Composable orchestration framework for building retrieval-augmented LLM applications with evaluation-first workflows."
	sentinelDescription = "Real-time computer vision system that monitors safety compliance on industrial floors with privacy preserving techniques."
	eunoiaDescription   = "Lightweight observability toolkit that tracks model drift, bias, and impact metrics across ML product teams."
)

// Default returns the site owner's data.
func Default() Store {
	return New(
		Profile{
			Name:     "Alex Taylor",
			Headline: "AI Engineer",
			Subtitle: heroSubtitle,
			GitHub:   "alextaylor-ai",
			Strengths: []string{
				"Applied Machine Learning",
				"LLM Integration",
				"ML Ops & Deployment",
				"Experimentation Strategy",
			},
		},
		[]SkillGroup{
			{
				Title: "Machine Learning & AI",
				Items: []string{
					"Deep Learning (PyTorch, TensorFlow)",
					"Generative AI & LLM orchestration",
					"Computer Vision & NLP pipelines",
					"Recommendation systems",
					"Model evaluation & bias auditing",
				},
			},
			{
				Title: "Data & Infrastructure",
				Items: []string{
					"Python, TypeScript, Go",
					"Vector databases (Pinecone, Weaviate)",
					"Streaming data (Kafka, Flink)",
					"Cloud ML (AWS Sagemaker, GCP Vertex)",
					"Experiment tracking (MLflow, Weights & Biases)",
				},
			},
			{
				Title: "Product & Collaboration",
				Items: []string{
					"Roadmapping & stakeholder alignment",
					"Leading cross-functional pods",
					"Rapid prototyping & user research",
					"Mentoring engineers & researchers",
					"Technical storytelling",
				},
			},
		},
		[]TimelineEntry{
			{
				Role:         "Senior AI Engineer",
				Organization: "Lumina Labs",
				Period:       "2022 — Present",
				Summary:      "Led a team of 5 to ship a retrieval-augmented assistant for enterprise knowledge, reducing support ticket resolution time by 37%.",
				Tags:         []string{"LLM pipelines", "Vector search", "Team leadership"},
			},
			{
				Role:         "AI Engineer",
				Organization: "Orbit Analytics",
				Period:       "2020 — 2022",
				Summary:      "Built automated anomaly detection across 2B+ sensor events per day, powering predictive maintenance for smart manufacturing clients.",
				Tags:         []string{"Streaming ML", "MLOps", "Edge deployment"},
			},
			{
				Role:         "Research Assistant",
				Organization: "University of Nottingham",
				Period:       "2018 — 2020",
				Summary:      "Published research on interpretable reinforcement learning for healthcare decision support systems.",
				Tags:         []string{"Research", "RL", "Explainability"},
			},
		},
		[]Project{
			{
				Name:        "Aurora Dialogue Engine",
				Description: auroraDescription,
				Topics:      []string{"TypeScript", "LangChain", "Pinecone"},
				Stars:       142,
				Forks:       18,
				URL:         "https://github.com/alextaylor-ai/aurora-dialogue-engine",
				Homepage:    "https://aurora.alextaylor.ai",
			},
			{
				Name:        "Sentinel Vision",
				Description: sentinelDescription,
				Topics:      []string{"Python", "PyTorch", "OpenCV"},
				Stars:       96,
				Forks:       11,
				URL:         "https://github.com/alextaylor-ai/sentinel-vision",
			},
			{
				Name:        "Eunoia Metrics",
				Description: eunoiaDescription,
				Topics:      []string{"Go", "gRPC", "React"},
				Stars:       73,
				Forks:       9,
				URL:         "https://github.com/alextaylor-ai/eunoia-metrics",
			},
		},
	)
}
