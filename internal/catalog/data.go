package catalog

import "github.com/viraj5503/portfolio-api/internal/model"

// Hand-authored portfolio content. Edit here and redeploy to change the site.

var personalInfo = model.PersonalInfo{
	Name:         "Viraj Suresh Dalsania",
	Title:        "Computer Science Master's Student",
	Subtitle:     "Data Science & AI/ML Enthusiast | TU Dresden",
	Email:        "viraj.dalsania2003@gmail.com",
	Phone:        "(+91) 9316471288",
	LinkedIn:     "https://www.linkedin.com/in/virajdalsania",
	GitHub:       "https://github.com/Viraj5503",
	Location:     "Dresden, Germany",
	ProfileImage: "https://customer-assets.emergentagent.com/job_viraj-analytics/artifacts/qlolufqr_WhatsApp%20Image%202025-09-16%20at%2000.42.38.jpeg",
}

var aboutInfo = model.AboutInfo{
	Summary: "Computer Science Master's student at Technische Universität Dresden with strong interest in Data Science and AI/ML applications. Passionate about exploring emerging AI technologies, conducting analytical research, and developing innovative solutions for complex data problems. Experienced in sentiment analysis, natural language processing, time-series forecasting, and anomaly detection with solid foundation in full-stack development gained through internship experience.",
	Highlights: []string{
		"Outstanding academic performance with distinction in Bachelor's degree",
		"Multiple IBM Data Science certifications and continuous learning",
		"Hands-on experience in ML/AI projects and quantitative finance",
		"Full-stack development experience from professional internship",
		"Currently learning German (B1 level, progressing to B2)",
	},
}

var projects = []model.Project{
	{
		ID:          1,
		Title:       "Implementation of LightGBM based Long-Short Trading Strategy for Indian Stocks",
		Subtitle:    "Bachelor Thesis Project",
		Duration:    "January 2025 - May 2025",
		Description: "Driven by passion for financial markets and data science, this thesis tackled building a robust, machine learning-powered long-short trading strategy for Indian stocks focusing on Nifty 500 stocks.",
		Challenge:   "Develop automated trading strategy using machine learning for Indian equity markets with real-world relevance and avoid lookahead bias.",
		Approach:    "Complete ML pipeline with automated data acquisition, feature engineering from historical price/volume data, LightGBM for classification/regression, and Optuna for hyperparameter optimization.",
		Results: []string{
			"Consistent out-of-sample Sharpe ratios indicating strong risk-adjusted profitability",
			"High win rates and regression accuracy with reliable predictive capabilities",
			"Developed live signal generation pipeline for next-day trading simulation",
			"Robust backtesting system with strict time-based data splits",
		},
		Technologies: []string{"Python", "LightGBM", "Scikit-learn", "Pandas", "Optuna", "Time-series Analysis", "Quantitative Finance"},
		Skills:       []string{"Quantitative Finance", "Algorithmic Trading", "Machine Learning", "Time Series Analysis", "Feature Engineering"},
		Category:     "Machine Learning",
	},
	{
		ID:          2,
		Title:       "Analyzing Impact of Russia-Ukraine War on Oil Prices using NLP and Machine Learning",
		Duration:    "September 2024 - December 2024",
		Description: "Examined geopolitical news sentiment impact on oil price volatility using advanced NLP techniques and machine learning.",
		Challenge:   "Analyze how geopolitical events and news sentiment affect oil price volatility in real-time.",
		Approach:    "Sentiment analysis using VADER and FinBERT, LSTM time-series forecasting, Reddit API data integration.",
		Results: []string{
			"High accuracy predictive model with clear sentiment-price correlations",
			"Successfully integrated multiple data sources for comprehensive analysis",
			"Demonstrated practical application of NLP in financial markets",
		},
		Technologies: []string{"Python", "TensorFlow", "LSTM", "FinBERT", "Reddit API", "NLP", "Predictive Analytics"},
		Skills:       []string{"Natural Language Processing", "Deep Learning", "Financial Data Analysis", "Time Series Forecasting"},
		Category:     "NLP & Deep Learning",
	},
	{
		ID:          3,
		Title:       "Anomaly Detection in Smart Homes Using Autoencoders and XAI",
		Duration:    "August 2024 - December 2024",
		Description: "Developed system to detect and explain IoT sensor anomalies in smart home environments with explainable AI.",
		Challenge:   "Detect and explain IoT sensor anomalies in smart home environments with interpretable results.",
		Approach:    "Autoencoders for feature extraction, Random Forest classification, LIME for interpretability and explainable AI.",
		Results: []string{
			"Achieved 99% accuracy in anomaly detection",
			"Provided explainable AI insights for better understanding",
			"Demonstrated practical IoT analytics application",
		},
		Technologies: []string{"Python", "Autoencoders", "Random Forest", "LIME", "IoT Analytics"},
		Skills:       []string{"Deep Learning", "Explainable AI", "IoT Analytics", "Feature Engineering"},
		Category:     "IoT & AI",
	},
	{
		ID:          4,
		Title:       "Employee Management System",
		Duration:    "May 2024 - July 2024",
		Description: "Created comprehensive full-stack application for employee data management during internship at IIH Global.",
		Challenge:   "Build production-ready employee management system with secure authentication and modern UI.",
		Approach:    "React.js frontend with Redux, Node.js/Express.js backend, MySQL database with JWT authentication.",
		Results: []string{
			"Production-ready application deployed successfully",
			"Secure authentication system implemented",
			"Modern, responsive UI with excellent user experience",
		},
		Technologies: []string{"React.js", "Redux Toolkit", "Node.js", "Express.js", "MySQL", "JWT", "Material-UI"},
		Skills:       []string{"Full-Stack Development", "Database Design", "Authentication Systems"},
		Category:     "Web Development",
	},
}

var skillsData = model.SkillsData{
	DataScience: []model.Skill{
		{Name: "Python", Level: 95, Category: "Programming"},
		{Name: "Machine Learning", Level: 90, Category: "AI/ML"},
		{Name: "Deep Learning", Level: 85, Category: "AI/ML"},
		{Name: "Natural Language Processing", Level: 80, Category: "AI/ML"},
		{Name: "Time Series Analysis", Level: 88, Category: "Analytics"},
		{Name: "Statistical Modeling", Level: 82, Category: "Analytics"},
	},
	Frameworks: []model.Skill{
		{Name: "PyTorch", Level: 85, Category: "AI/ML"},
		{Name: "TensorFlow", Level: 80, Category: "AI/ML"},
		{Name: "Scikit-learn", Level: 92, Category: "AI/ML"},
		{Name: "LightGBM", Level: 88, Category: "AI/ML"},
		{Name: "Pandas", Level: 95, Category: "Data"},
		{Name: "NumPy", Level: 90, Category: "Data"},
	},
	WebDev: []model.Skill{
		{Name: "React.js", Level: 85, Category: "Frontend"},
		{Name: "Node.js", Level: 80, Category: "Backend"},
		{Name: "JavaScript", Level: 85, Category: "Programming"},
		{Name: "MySQL", Level: 75, Category: "Database"},
		{Name: "Redux", Level: 78, Category: "Frontend"},
	},
	Specialized: []model.Skill{
		{Name: "Quantitative Finance", Level: 85, Category: "Finance"},
		{Name: "Algorithmic Trading", Level: 80, Category: "Finance"},
		{Name: "AWS", Level: 70, Category: "Cloud"},
		{Name: "Git/GitHub", Level: 88, Category: "Tools"},
	},
}

var education = []model.Education{
	{
		Degree:      "Master of Science in Computer Science",
		Institution: "Technische Universität Dresden",
		Location:    "Dresden, Germany",
		Duration:    "October 2025 - Present",
		Details:     "Focus: Advanced AI/ML research and applications",
		Status:      "current",
	},
	{
		Degree:      "Bachelor of Technology in Information and Communication Technology",
		Institution: "Pandit Deendayal Energy University",
		Location:    "Gandhinagar, India",
		Duration:    "2021 - 2025",
		Details:     "CGPA: 9.69/10.0 (Graduated with Outstanding Distinction)",
		Status:      "completed",
	},
}

var certifications = []model.Certification{
	{Title: "Databases and SQL for Data Science with Python", Issuer: "IBM", Date: "September 2025", Category: "Data Science"},
	{Title: "Python Project for Data Science", Issuer: "IBM", Date: "June 2025", Category: "Data Science"},
	{Title: "Python for Data Science, AI & Development", Issuer: "IBM", Date: "April 2025", Category: "Data Science"},
	{Title: "Data Science Methodology", Issuer: "IBM", Date: "February 2025", Category: "Data Science"},
	{Title: "Tools for Data Science", Issuer: "IBM", Date: "January 2025", Category: "Data Science"},
	{Title: "What is Data Science?", Issuer: "IBM", Date: "January 2025", Category: "Data Science"},
	{Title: "Ultimate AWS Certified Cloud Practitioner CLF-C02", Issuer: "Udemy", Date: "July 2024", Category: "Cloud Computing"},
	{Title: "Privacy and Security in Online Social Media", Issuer: "NPTEL", Date: "April 2024", Category: "Security", Details: "Elite Certificate, Top 1%"},
}

var experience = []model.Experience{
	{
		Title:    "Full Stack Web Developer Intern",
		Company:  "IIH Global",
		Location: "Ahmedabad, India",
		Duration: "May 2024 - July 2024",
		Responsibilities: []string{
			"Developed Employee Management application using MERN stack with Redux Toolkit",
			"Implemented secure authentication and real-time database operations",
			"Enhanced skills in both frontend and backend development through various projects",
			"Gained practical experience in full-stack development, API integration, and database management",
		},
	},
}

var languages = []model.Language{
	{Name: "English", Level: "C2 Listening/Reading, C1 Writing/Speaking"},
	{Name: "German", Level: "B1 (Currently learning B2)"},
	{Name: "Hindi", Level: "Native"},
	{Name: "Gujarati", Level: "Native"},
}

var achievements = []string{
	"Outstanding Academic Performance with distinction in Bachelor's degree",
	"Multiple professional certifications in data science",
	"Successfully completed comprehensive ML/AI projects with practical applications",
	"National Silver Medalist - Reliance Drishti Essay Writing Competition",
	"Elite Certificate (Top 1%) - NPTEL Privacy and Security course",
	"District Level Table Tennis Player",
}
