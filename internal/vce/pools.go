package vce

import "github.com/examtools/vceplay/internal/model"

// Canned question pools used when the binary probe fails. Topic selection is
// keyword-driven from the exam title; within a topic the pool order varies
// by the path-derived seed so different files of the same topic do not look
// identical.

func single(text string, options []string, correct int, explanation string) model.Question {
	return model.Question{
		Kind:           model.QuestionKindSingle,
		Text:           text,
		Options:        options,
		CorrectOptions: []int{correct},
		Explanation:    explanation,
	}
}

func multiple(text string, options []string, correct []int, explanation string) model.Question {
	return model.Question{
		Kind:           model.QuestionKindMultiple,
		Text:           text,
		Options:        options,
		CorrectOptions: correct,
		Explanation:    explanation,
	}
}

func az305Pool() []model.Question {
	return []model.Question{
		single("What is the primary purpose of Azure Resource Manager templates?",
			[]string{"Deploy and manage Azure resources as a group", "Handle user authentication only", "Provide cloud storage solutions", "Manage virtual networks exclusively"},
			0, "ARM templates provide infrastructure as code capabilities for consistent deployments."),
		single("Which Azure service provides managed Kubernetes orchestration?",
			[]string{"Azure Container Instances", "Azure Kubernetes Service (AKS)", "Azure Functions", "Azure Logic Apps"},
			1, "AKS provides fully managed Kubernetes with automated updates and scaling."),
		single("What is Azure Load Balancer used for?",
			[]string{"Distribute traffic across multiple servers", "Store data in the cloud", "Manage user identities", "Run serverless functions"},
			0, "Load Balancer distributes inbound traffic for high availability and performance."),
		single("Which Azure service provides private connectivity between Azure and on-premises?",
			[]string{"Azure VPN Gateway", "Azure Application Gateway", "Azure Front Door", "Azure Traffic Manager"},
			0, "VPN Gateway provides secure cross-premises connectivity to Azure."),
		multiple("Which Azure networking services support SSL termination? (Select all that apply)",
			[]string{"Azure Application Gateway", "Azure Load Balancer", "Azure Front Door", "Azure Traffic Manager"},
			[]int{0, 2}, "Application Gateway and Front Door both support SSL termination capabilities."),
		single("What is Azure ExpressRoute used for?",
			[]string{"Public internet connectivity", "Private dedicated connectivity to Azure", "Content delivery network", "DNS resolution"},
			1, "ExpressRoute provides private, dedicated connections to Azure datacenters."),
		single("What does Azure Active Directory provide?",
			[]string{"Virtual machine management", "Identity and access management", "Database administration", "Network monitoring"},
			1, "Azure AD is Microsoft's cloud-based identity and access management service."),
		single("Which Azure service provides secrets management?",
			[]string{"Azure Storage", "Azure Key Vault", "Azure Monitor", "Azure Backup"},
			1, "Key Vault securely stores and manages secrets, keys, and certificates."),
		multiple("Which authentication methods are supported by Azure AD? (Select all that apply)",
			[]string{"Multi-factor authentication", "Single sign-on (SSO)", "Conditional access", "Password-based authentication"},
			[]int{0, 1, 2, 3}, "Azure AD supports comprehensive authentication methods for security."),
		multiple("Which Azure storage types are available? (Select all that apply)",
			[]string{"Blob storage for unstructured data", "File storage for SMB shares", "Queue storage for messages", "Table storage for NoSQL data"},
			[]int{0, 1, 2, 3}, "Azure Storage provides multiple data services for different use cases."),
		single("What is Azure SQL Database?",
			[]string{"A NoSQL database service", "A managed relational database service", "A data warehouse solution", "A file storage service"},
			1, "Azure SQL Database is a fully managed relational database service."),
		single("Which service provides big data analytics in Azure?",
			[]string{"Azure Storage", "Azure SQL Database", "Azure Synapse Analytics", "Azure Cosmos DB"},
			2, "Synapse Analytics provides enterprise data warehousing and big data analytics."),
		single("What is Azure App Service used for?",
			[]string{"Virtual machine management", "Web application hosting", "Database management", "Network configuration"},
			1, "App Service provides a platform for hosting web applications and APIs."),
		single("Which Azure service provides serverless computing?",
			[]string{"Azure Virtual Machines", "Azure Container Instances", "Azure Functions", "Azure Kubernetes Service"},
			2, "Azure Functions provides event-driven serverless computing."),
		multiple("Which Azure compute services support auto-scaling? (Select all that apply)",
			[]string{"Azure Virtual Machine Scale Sets", "Azure App Service", "Azure Functions", "Azure Container Instances"},
			[]int{0, 1, 2}, "These services provide automatic scaling based on demand."),
		single("What is Azure Monitor used for?",
			[]string{"Virtual machine management", "Application and infrastructure monitoring", "Identity management", "Database administration"},
			1, "Azure Monitor collects and analyzes telemetry from cloud and on-premises environments."),
		single("Which Azure service provides content delivery network capabilities?",
			[]string{"Azure Traffic Manager", "Azure Front Door", "Azure CDN", "Azure Load Balancer"},
			2, "Azure CDN provides global content delivery network capabilities."),
		single("What is Azure Policy used for?",
			[]string{"User authentication", "Resource compliance and governance", "Data storage", "Network configuration"},
			1, "Azure Policy helps enforce organizational standards and assess compliance at scale."),
		single("What is the purpose of Azure Availability Zones?",
			[]string{"Cost optimization", "High availability and disaster recovery", "Performance enhancement", "Security isolation"},
			1, "Availability Zones provide high availability by distributing resources across physically separate datacenters."),
		single("Which Azure service provides hybrid cloud connectivity?",
			[]string{"Azure VPN Gateway", "Azure ExpressRoute", "Azure Arc", "All of the above"},
			3, "All these services provide different aspects of hybrid cloud connectivity."),
	}
}

func az104Pool() []model.Question {
	return []model.Question{
		single("Which Azure service allows you to create and manage virtual machines?",
			[]string{"Azure Compute", "Azure Virtual Machines", "Azure Container Service", "Azure App Service"},
			1, "Azure Virtual Machines provides on-demand, scalable computing resources."),
		single("What is the purpose of Azure Availability Sets?",
			[]string{"Provide high availability for VMs", "Manage storage accounts", "Configure network security", "Monitor application performance"},
			0, "Availability Sets ensure VMs are distributed across fault and update domains."),
		multiple("Which VM sizes are available in Azure? (Select all that apply)",
			[]string{"General purpose (B, D series)", "Compute optimized (F series)", "Memory optimized (E, M series)", "Storage optimized (L series)"},
			[]int{0, 1, 2, 3}, "Azure offers various VM sizes optimized for different workloads."),
		single("Which storage account type provides the lowest cost for infrequently accessed data?",
			[]string{"Premium SSD", "Standard HDD", "Cool storage tier", "Archive storage tier"},
			3, "Archive tier offers the lowest storage costs for rarely accessed data."),
		single("What is Azure Disk Encryption used for?",
			[]string{"Network traffic encryption", "VM disk encryption at rest", "Database encryption", "Application-level encryption"},
			1, "Azure Disk Encryption encrypts VM disks using BitLocker or DM-Crypt."),
		multiple("Which Azure storage replication options are available? (Select all that apply)",
			[]string{"Locally redundant storage (LRS)", "Zone-redundant storage (ZRS)", "Geo-redundant storage (GRS)", "Read-access geo-redundant storage (RA-GRS)"},
			[]int{0, 1, 2, 3}, "Azure provides multiple replication options for different durability needs."),
		single("What is Role-Based Access Control (RBAC) used for?",
			[]string{"Network traffic control", "Managing user permissions and access", "Data encryption", "Performance monitoring"},
			1, "RBAC provides fine-grained access management for Azure resources."),
		multiple("Which built-in RBAC roles are commonly used? (Select all that apply)",
			[]string{"Owner", "Contributor", "Reader", "User Access Administrator"},
			[]int{0, 1, 2, 3}, "These are fundamental built-in roles for Azure resource management."),
		single("What is Azure AD Connect used for?",
			[]string{"Connecting to on-premises Active Directory", "Managing Azure subscriptions", "Configuring network connections", "Monitoring application performance"},
			0, "Azure AD Connect synchronizes on-premises AD with Azure AD."),
		single("What is the purpose of Network Security Groups (NSGs)?",
			[]string{"Load balancing traffic", "Filtering network traffic with security rules", "Managing DNS resolution", "Providing VPN connectivity"},
			1, "NSGs contain security rules that allow or deny network traffic."),
		single("Which service provides name resolution for Azure resources?",
			[]string{"Azure Traffic Manager", "Azure DNS", "Azure Load Balancer", "Azure Application Gateway"},
			1, "Azure DNS provides name resolution using Microsoft's global network."),
		single("What is VNet peering used for?",
			[]string{"Connecting VNets in the same or different regions", "Creating VPN connections", "Managing network security", "Load balancing traffic"},
			0, "VNet peering connects virtual networks for resource communication."),
		single("Which service provides monitoring and alerting for Azure resources?",
			[]string{"Azure Security Center", "Azure Monitor", "Azure Advisor", "Azure Policy"},
			1, "Azure Monitor collects and analyzes telemetry from cloud and on-premises environments."),
		single("What is Azure Backup used for?",
			[]string{"Network security", "Data protection and recovery", "Performance optimization", "Cost management"},
			1, "Azure Backup provides backup and restore capabilities for Azure resources."),
		multiple("Which Azure services can be backed up using Azure Backup? (Select all that apply)",
			[]string{"Azure Virtual Machines", "Azure SQL Database", "Azure Files", "On-premises servers"},
			[]int{0, 1, 2, 3}, "Azure Backup supports various Azure services and on-premises resources."),
		single("What is Azure Resource Manager used for?",
			[]string{"Managing user identities", "Deploying and managing Azure resources", "Monitoring applications", "Configuring networks"},
			1, "Azure Resource Manager provides a management layer for creating, updating, and deleting resources."),
		single("Which tool provides cost management and billing information?",
			[]string{"Azure Monitor", "Azure Advisor", "Azure Cost Management", "Azure Policy"},
			2, "Azure Cost Management provides tools to monitor, allocate, and optimize cloud costs."),
		single("What is the purpose of Azure Tags?",
			[]string{"Security configuration", "Resource organization and cost tracking", "Performance monitoring", "Network routing"},
			1, "Tags help organize resources and track costs across different departments or projects."),
		single("What is Azure Automation used for?",
			[]string{"Manual resource management", "Automating repetitive tasks", "User authentication", "Data storage"},
			1, "Azure Automation provides process automation, configuration management, and update management."),
		single("Which Azure service provides configuration management for VMs?",
			[]string{"Azure Monitor", "Azure Automation State Configuration", "Azure Backup", "Azure Security Center"},
			1, "Azure Automation State Configuration ensures VMs maintain desired configuration state."),
	}
}

// generalPools holds fallback pools for titles that match no specific topic.
// The path-derived seed picks one of them.
func generalPools() [][]model.Question {
	return [][]model.Question{
		{
			single("What is Microsoft Azure?",
				[]string{"A cloud computing platform", "A database management system", "An operating system", "A programming language"},
				0, "Microsoft Azure is a comprehensive cloud computing platform and service."),
			single("Which Azure service provides web application hosting?",
				[]string{"Azure Virtual Machines", "Azure App Service", "Azure Storage", "Azure SQL Database"},
				1, "Azure App Service provides a platform for hosting web applications and APIs."),
			single("What is Azure Storage used for?",
				[]string{"Computing resources", "Data storage and management", "Network configuration", "User authentication"},
				1, "Azure Storage provides scalable cloud storage for various data types."),
		},
		{
			single("What is the main benefit of cloud computing?",
				[]string{"Fixed costs", "On-demand scalability", "Local data storage", "Offline access"},
				1, "Cloud computing provides on-demand scalability and flexibility."),
			multiple("Which are characteristics of cloud computing? (Select all that apply)",
				[]string{"On-demand self-service", "Broad network access", "Resource pooling", "Rapid elasticity"},
				[]int{0, 1, 2, 3}, "These are the essential characteristics of cloud computing."),
			single("What is Infrastructure as a Service (IaaS)?",
				[]string{"Software applications", "Development platforms", "Computing infrastructure", "Business processes"},
				2, "IaaS provides virtualized computing infrastructure over the internet."),
		},
	}
}
